package services

import (
	"context"
	"fmt"
	"testing"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/pkg/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fixture wires every service against one in-memory database
type fixture struct {
	db          *gorm.DB
	dealers     *DealerService
	technicians *TechnicianService
	backOffice  *BackOfficeService
	catalog     *CatalogService
	discounts   *DiscountService
	rma         *RMAService
	courses     *CourseService
}

type stubNotifier struct {
	calls int
	err   error
}

func (n *stubNotifier) NotifyDealerApproved(_ context.Context, _ *models.Dealer) error {
	n.calls++
	return n.err
}

func newFixture(t *testing.T, notifier DealerNotifier) *fixture {
	t.Helper()

	db := testdb.New(t)
	logger := zap.NewNop()

	dealerRepo := repositories.NewDealerRepository(db)
	technicianRepo := repositories.NewTechnicianRepository(db)
	backOfficeRepo := repositories.NewBackOfficeRepository(db)
	productRepo := repositories.NewProductRepository(db)

	return &fixture{
		db:          db,
		dealers:     NewDealerService(dealerRepo, notifier, logger),
		technicians: NewTechnicianService(technicianRepo, dealerRepo, logger),
		backOffice:  NewBackOfficeService(backOfficeRepo, dealerRepo, logger),
		catalog: NewCatalogService(
			repositories.NewCategoryRepository(db),
			repositories.NewSubcategoryRepository(db),
			productRepo,
			logger,
		),
		discounts: NewDiscountService(repositories.NewDiscountRepository(db), dealerRepo, productRepo, logger),
		rma:       NewRMAService(repositories.NewRMARepository(db), dealerRepo, technicianRepo, backOfficeRepo, logger),
		courses:   NewCourseService(repositories.NewCourseRepository(db), logger),
	}
}

func address() AddressInput {
	return AddressInput{
		Line1:   "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
	}
}

func dealerInput(n int) *RegisterDealerInput {
	return &RegisterDealerInput{
		FirstName:       "Asha",
		LastName:        "Rao",
		BusinessName:    fmt.Sprintf("Rao Networks %d", n),
		GSTIN:           fmt.Sprintf("%02dABCDE1234F1Z5", 10+n),
		Email:           fmt.Sprintf("dealer%d@example.com", n),
		Phone:           fmt.Sprintf("98765432%02d", n),
		ShippingAddress: address(),
		BillingAddress:  address(),
	}
}

func (f *fixture) registerDealer(t *testing.T, n int) *models.Dealer {
	t.Helper()
	dealer, err := f.dealers.Register(context.Background(), dealerInput(n))
	require.NoError(t, err)
	return dealer
}

func subAccountInput(email string) *CreateSubAccountInput {
	return &CreateSubAccountInput{FirstName: "Ravi", LastName: "Kumar", Email: email, Phone: "9123456780"}
}

// seedCatalog creates Routers > 300N Router holding two products
func (f *fixture) seedCatalog(t *testing.T) (x1, n300 *models.Product) {
	t.Helper()
	ctx := context.Background()

	_, err := f.catalog.AddCategory(ctx, &CategoryInput{Name: "Routers"})
	require.NoError(t, err)
	_, err = f.catalog.AddSubcategory(ctx, &SubcategoryInput{Name: "300N Router", CategoryName: "Routers"})
	require.NoError(t, err)

	x1, err = f.catalog.AddProduct(ctx, &ProductInput{
		Title:           "TP-Link X1",
		Price:           decimal.RequireFromString("1499.50"),
		Quantity:        10,
		Keywords:        []string{"wifi", "router"},
		CategoryName:    "Routers",
		SubcategoryName: "300N Router",
	})
	require.NoError(t, err)

	n300, err = f.catalog.AddProduct(ctx, &ProductInput{
		Title:           "Netgear N300",
		Price:           decimal.NewFromInt(999),
		CategoryName:    "Routers",
		SubcategoryName: "300N Router",
	})
	require.NoError(t, err)
	return x1, n300
}
