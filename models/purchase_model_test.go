package models

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupLedgerDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", testDBName(t))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Teacher{}, &Package{}, &Purchase{}, &Lesson{}))
	return db
}

func testDBName(t *testing.T) string {
	return strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
}

func seedPurchase(t *testing.T, db *gorm.DB, remaining int, status string) *Purchase {
	student := User{Name: "Alice", Email: fmt.Sprintf("alice-%s-%d@example.com", t.Name(), time.Now().UnixNano()), Password: "x", Role: RoleStudent}
	require.NoError(t, db.Create(&student).Error)

	pkg := Package{Name: "Starter", Price: 99.0, LessonsCount: 10, Description: "ten lessons", IsActive: true}
	require.NoError(t, db.Create(&pkg).Error)

	purchase := Purchase{
		StudentID:        student.ID,
		PackageID:        pkg.ID,
		RemainingLessons: remaining,
		Status:           status,
		PurchaseDate:     time.Now(),
	}
	require.NoError(t, db.Create(&purchase).Error)
	return &purchase
}

func TestConsumeCredit(t *testing.T) {
	t.Run("decrements an active purchase", func(t *testing.T) {
		p := Purchase{RemainingLessons: 3, Status: PurchaseActive}

		require.NoError(t, p.ConsumeCredit())
		assert.Equal(t, 2, p.RemainingLessons)
		assert.Equal(t, PurchaseActive, p.Status)
	})

	t.Run("completes when the last credit is drained", func(t *testing.T) {
		p := Purchase{RemainingLessons: 1, Status: PurchaseActive}

		require.NoError(t, p.ConsumeCredit())
		assert.Equal(t, 0, p.RemainingLessons)
		assert.Equal(t, PurchaseCompleted, p.Status)
	})

	t.Run("fails on zero balance without mutating", func(t *testing.T) {
		p := Purchase{RemainingLessons: 0, Status: PurchaseActive}

		err := p.ConsumeCredit()
		assert.ErrorIs(t, err, ErrInsufficientCredits)
		assert.Equal(t, 0, p.RemainingLessons)
		assert.Equal(t, PurchaseActive, p.Status)
	})

	t.Run("fails on non-active purchases with credits left", func(t *testing.T) {
		for _, status := range []string{PurchaseExpired, PurchaseRefunded} {
			p := Purchase{RemainingLessons: 5, Status: status}

			err := p.ConsumeCredit()
			assert.ErrorIs(t, err, ErrPurchaseNotActive)
			assert.Equal(t, 5, p.RemainingLessons)
		}
	})
}

func TestConsumeLessonCredit(t *testing.T) {
	t.Run("full drain scenario", func(t *testing.T) {
		db := setupLedgerDB(t)
		p := seedPurchase(t, db, 3, PurchaseActive)

		got, err := ConsumeLessonCredit(db, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.RemainingLessons)
		assert.Equal(t, PurchaseActive, got.Status)

		got, err = ConsumeLessonCredit(db, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.RemainingLessons)
		assert.Equal(t, PurchaseActive, got.Status)

		// Third call drains the last credit and completes the purchase in
		// the same update.
		got, err = ConsumeLessonCredit(db, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.RemainingLessons)
		assert.Equal(t, PurchaseCompleted, got.Status)

		// A fourth attempt reports exhaustion, not a status conflict.
		_, err = ConsumeLessonCredit(db, p.ID)
		assert.ErrorIs(t, err, ErrInsufficientCredits)
	})

	t.Run("returns the purchase joined with student and package", func(t *testing.T) {
		db := setupLedgerDB(t)
		p := seedPurchase(t, db, 2, PurchaseActive)

		got, err := ConsumeLessonCredit(db, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Student.Name)
		assert.Equal(t, "Starter", got.Package.Name)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupLedgerDB(t)

		_, err := ConsumeLessonCredit(db, 4242)
		assert.ErrorIs(t, err, ErrPurchaseNotFound)
	})

	t.Run("exhausted active purchase is left unchanged", func(t *testing.T) {
		db := setupLedgerDB(t)
		p := seedPurchase(t, db, 0, PurchaseActive)

		_, err := ConsumeLessonCredit(db, p.ID)
		assert.ErrorIs(t, err, ErrInsufficientCredits)

		var after Purchase
		require.NoError(t, db.First(&after, p.ID).Error)
		assert.Equal(t, 0, after.RemainingLessons)
		assert.Equal(t, PurchaseActive, after.Status)
	})

	t.Run("refunded purchase with credits left is not consumable", func(t *testing.T) {
		db := setupLedgerDB(t)
		p := seedPurchase(t, db, 4, PurchaseRefunded)

		_, err := ConsumeLessonCredit(db, p.ID)
		assert.ErrorIs(t, err, ErrPurchaseNotActive)

		var after Purchase
		require.NoError(t, db.First(&after, p.ID).Error)
		assert.Equal(t, 4, after.RemainingLessons)
	})
}

// Two concurrent consumers racing for the last credit: exactly one wins,
// the balance never goes negative.
func TestConsumeLessonCreditConcurrent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "ledger.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Teacher{}, &Package{}, &Purchase{}, &Lesson{}))

	p := seedPurchase(t, db, 1, PurchaseActive)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ConsumeLessonCredit(db, p.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, insufficient int
	for err := range results {
		switch {
		case err == nil:
			successes++
		default:
			assert.ErrorIs(t, err, ErrInsufficientCredits)
			insufficient++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, insufficient)

	var after Purchase
	require.NoError(t, db.First(&after, p.ID).Error)
	assert.Equal(t, 0, after.RemainingLessons)
	assert.Equal(t, PurchaseCompleted, after.Status)
}
