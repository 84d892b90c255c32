package queries_test

import (
	"context"
	"testing"
	"time"

	"packnow/internal/adapters/out/postgres/packerrepo"
	"packnow/internal/core/application/usecases/queries"
	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/material"
	"packnow/internal/core/domain/model/packer"
	"packnow/internal/pkg/errs"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestNewGetLowStockPackersQuery(t *testing.T) {
	t.Run("should create query with positive threshold", func(t *testing.T) {
		query, err := queries.NewGetLowStockPackersQuery(10)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		require.Equal(t, 10, query.Threshold())
	})

	t.Run("should reject zero threshold", func(t *testing.T) {
		_, err := queries.NewGetLowStockPackersQuery(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative threshold", func(t *testing.T) {
		_, err := queries.NewGetLowStockPackersQuery(-5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

type GetLowStockPackersQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetLowStockPackersQueryHandler
	packerRepo *packerrepo.GormPackerRepository
}

func (suite *GetLowStockPackersQueryHandlerTestSuite) SetupSuite() {
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
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&packerrepo.PackerDTO{}))

	suite.handler = queries.NewGetLowStockPackersQueryHandler(db)
	suite.packerRepo = packerrepo.NewGormPackerRepository(db, &mockAggregateTracker{})
}

func (suite *GetLowStockPackersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetLowStockPackersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE packers").Error)
}

func (suite *GetLowStockPackersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetLowStockPackersQuery(10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetLowStockPackersQueryHandlerTestSuite) TestHandle_FiltersWellStockedPackers() {
	lowPacker := suite.createStockedPacker("Asha", packer.Inventory{
		material.BubbleWrap:  3,
		material.PackingTape: 50,
	})
	stockedPacker := suite.createStockedPacker("Ravi", packer.Inventory{
		material.BubbleWrap:  100,
		material.PackingTape: 50,
	})

	for _, p := range []*packer.Packer{lowPacker, stockedPacker} {
		suite.Require().NoError(suite.packerRepo.Add(context.Background(), p))
	}

	query, err := queries.NewGetLowStockPackersQuery(10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(lowPacker.ID(), result[0].ID)
	suite.Equal("Asha", result[0].Name)
	suite.Equal(map[string]int{material.BubbleWrap: 3}, result[0].LowItems)
}

func (suite *GetLowStockPackersQueryHandlerTestSuite) TestHandle_ReportsOnlyLowMaterials() {
	lowPacker := suite.createStockedPacker("Meera", packer.Inventory{
		material.BubbleWrap:     2,
		material.PackingTape:    1,
		material.FragileSticker: 200,
	})
	suite.Require().NoError(suite.packerRepo.Add(context.Background(), lowPacker))

	query, err := queries.NewGetLowStockPackersQuery(5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(map[string]int{
		material.BubbleWrap:  2,
		material.PackingTape: 1,
	}, result[0].LowItems)
}

func (suite *GetLowStockPackersQueryHandlerTestSuite) TestHandle_ThresholdIsExclusive() {
	boundaryPacker := suite.createStockedPacker("Asha", packer.Inventory{
		material.BubbleWrap: 10,
	})
	suite.Require().NoError(suite.packerRepo.Add(context.Background(), boundaryPacker))

	query, err := queries.NewGetLowStockPackersQuery(10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result, "Stock equal to the threshold should not count as low")
}

func (suite *GetLowStockPackersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetLowStockPackersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetLowStockPackersQuery constructor")
}

func (suite *GetLowStockPackersQueryHandlerTestSuite) createStockedPacker(name string, inventory packer.Inventory) *packer.Packer {
	location, err := kernel.NewGeoPoint(19.076, 72.8777)
	suite.Require().NoError(err)

	testPacker, err := packer.NewPacker(kernel.NewUUID(), name, location, inventory, 4.5)
	suite.Require().NoError(err)

	return testPacker
}

func TestGetLowStockPackersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetLowStockPackersQueryHandlerTestSuite))
}
