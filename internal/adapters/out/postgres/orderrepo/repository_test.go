package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}

func (s *GormOrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	s.Require().NoError(err)

	s.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (s *GormOrderRepositoryTestSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *GormOrderRepositoryTestSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error
	s.Require().NoError(err)
}

func (s *GormOrderRepositoryTestSuite) newOrder(placedAt time.Time) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), 2, decimal.RequireFromString("125.50"))
	s.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, placedAt,
	)
	s.Require().NoError(err)
	return o
}

func (s *GormOrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := s.newOrder(time.Now().UTC())

	s.Require().NoError(s.repo.Add(ctx, o))

	loaded, err := s.repo.Get(ctx, o.ID())
	s.Require().NoError(err)
	s.True(loaded.ID().IsEqual(o.ID()))
	s.Equal(order.Placed, loaded.Status())
	s.True(loaded.TotalPrice().Equal(decimal.RequireFromString("251.00")))
	s.Len(loaded.Items(), 1)
	s.Equal(2, loaded.Items()[0].Quantity())
	s.False(loaded.HasPartner())
	s.Equal(int64(1), loaded.Version())
}

func (s *GormOrderRepositoryTestSuite) TestGet_UnknownOrder() {
	_, err := s.repo.Get(context.Background(), kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *GormOrderRepositoryTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()
	o := s.newOrder(time.Now().UTC())
	s.Require().NoError(s.repo.Add(ctx, o))

	partnerID := kernel.NewUUID()
	s.Require().NoError(o.AcceptBy(partnerID))
	s.Require().NoError(s.repo.Update(ctx, o))

	loaded, err := s.repo.Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Confirmed, loaded.Status())
	s.Require().NotNil(loaded.Partner())
	s.True(loaded.Partner().IsEqual(partnerID))
	s.Equal(int64(2), loaded.Version())
}

func (s *GormOrderRepositoryTestSuite) TestUpdate_StaleVersionConflict() {
	ctx := context.Background()
	o := s.newOrder(time.Now().UTC())
	s.Require().NoError(s.repo.Add(ctx, o))

	// First writer wins.
	s.Require().NoError(o.AcceptBy(kernel.NewUUID()))
	s.Require().NoError(s.repo.Update(ctx, o))

	// The same stale aggregate loses the second round.
	err := s.repo.Update(ctx, o)
	s.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (s *GormOrderRepositoryTestSuite) TestUpdate_UnknownOrder() {
	o := s.newOrder(time.Now().UTC())
	err := s.repo.Update(context.Background(), o)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *GormOrderRepositoryTestSuite) TestGetFirstUnassignedInStatus_PicksOldest() {
	ctx := context.Background()

	older := s.newOrder(time.Now().UTC().Add(-time.Hour))
	s.Require().NoError(older.Override(order.Preparing))
	newer := s.newOrder(time.Now().UTC())
	s.Require().NoError(newer.Override(order.Preparing))

	assigned := s.newOrder(time.Now().UTC().Add(-2 * time.Hour))
	s.Require().NoError(assigned.Override(order.Preparing))
	s.Require().NoError(assigned.AssignPartner(kernel.NewUUID()))
	s.Require().NoError(assigned.Override(order.Preparing))

	s.Require().NoError(s.repo.Add(ctx, older))
	s.Require().NoError(s.repo.Add(ctx, newer))
	s.Require().NoError(s.repo.Add(ctx, assigned))

	found, err := s.repo.GetFirstUnassignedInStatus(ctx, order.Preparing)
	s.Require().NoError(err)
	s.True(found.ID().IsEqual(older.ID()))
}

func (s *GormOrderRepositoryTestSuite) TestGetFirstUnassignedInStatus_Empty() {
	_, err := s.repo.GetFirstUnassignedInStatus(context.Background(), order.Preparing)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *GormOrderRepositoryTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()
	o := s.newOrder(time.Now().UTC())
	s.Require().NoError(s.repo.Add(ctx, o))

	s.Require().NoError(s.repo.Delete(ctx, o.ID()))

	_, err := s.repo.Get(ctx, o.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var itemCount int64
	s.Require().NoError(s.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	s.Zero(itemCount)

	err = s.repo.Delete(ctx, o.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
