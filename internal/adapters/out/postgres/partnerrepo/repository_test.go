package partnerrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/partnerrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/partner"
	"fooddelivery/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GormPartnerRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *partnerrepo.GormPartnerRepository
}

func TestGormPartnerRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GormPartnerRepositoryTestSuite))
}

func (s *GormPartnerRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&partnerrepo.PartnerDTO{})
	s.Require().NoError(err)

	s.repo = partnerrepo.NewGormPartnerRepository(db, noopTracker{})
}

func (s *GormPartnerRepositoryTestSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *GormPartnerRepositoryTestSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE delivery_partners CASCADE").Error
	s.Require().NoError(err)
}

func (s *GormPartnerRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	p, err := partner.NewPartner(kernel.NewUUID(), &userID)
	s.Require().NoError(err)

	point, err := kernel.NewGeoPoint(gofakeit.Latitude(), gofakeit.Longitude())
	s.Require().NoError(err)
	s.Require().NoError(p.ReportLocation(point, true))

	s.Require().NoError(s.repo.Add(ctx, p))

	loaded, err := s.repo.Get(ctx, p.ID())
	s.Require().NoError(err)
	s.True(loaded.ID().IsEqual(p.ID()))
	s.Require().NotNil(loaded.UserID())
	s.True(loaded.UserID().IsEqual(userID))
	s.True(loaded.Location().IsEqual(point))
	s.True(loaded.IsAvailable())
}

func (s *GormPartnerRepositoryTestSuite) TestGetByUserID() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	p, err := partner.NewPartner(kernel.NewUUID(), &userID)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Add(ctx, p))

	loaded, err := s.repo.GetByUserID(ctx, userID)
	s.Require().NoError(err)
	s.True(loaded.ID().IsEqual(p.ID()))

	_, err = s.repo.GetByUserID(ctx, kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *GormPartnerRepositoryTestSuite) TestGetAllAvailable_FiltersBusyPartners() {
	ctx := context.Background()

	free, err := partner.NewPartner(kernel.NewUUID(), nil)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Add(ctx, free))

	busy, err := partner.NewPartner(kernel.NewUUID(), nil)
	s.Require().NoError(err)
	s.Require().NoError(busy.MarkBusy())
	s.Require().NoError(s.repo.Add(ctx, busy))

	available, err := s.repo.GetAllAvailable(ctx)
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.True(available[0].ID().IsEqual(free.ID()))
}

func (s *GormPartnerRepositoryTestSuite) TestUpdate_StaleVersionConflict() {
	ctx := context.Background()
	p, err := partner.NewPartner(kernel.NewUUID(), nil)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Add(ctx, p))

	s.Require().NoError(p.MarkBusy())
	s.Require().NoError(s.repo.Update(ctx, p))

	err = s.repo.Update(ctx, p)
	s.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (s *GormPartnerRepositoryTestSuite) TestUpdate_UnknownPartner() {
	p, err := partner.NewPartner(kernel.NewUUID(), nil)
	s.Require().NoError(err)

	err = s.repo.Update(context.Background(), p)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
