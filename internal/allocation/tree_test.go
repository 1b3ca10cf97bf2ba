package allocation

import (
	"reflect"
	"testing"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"github.com/stretchr/testify/assert"
)

func fixtureResource() models.EventResource {
	return models.EventResource{
		ID:       "res-1",
		EventID:  "ev-1",
		Name:     "Main Hall",
		Type:     models.TypeSpace,
		Quantity: 10,
		Unit:     "m2",
		IsPublic: true,
		Price:    100,
		Reserved: 3,
	}
}

func fixtureSuppliers() []models.Supplier {
	return []models.Supplier{
		{
			ID: "sup-1", Name: "Spaces Inc", Type: models.TypeSpace,
			Products: []models.SupplierProduct{
				{ID: "prod-1", SupplierID: "sup-1", Name: "Folding Chair", UnitPrice: 100},
			},
		},
		{
			ID: "sup-2", Name: "Venue Co", Type: models.TypeSpace,
			Products: []models.SupplierProduct{
				{ID: "prod-2", SupplierID: "sup-2", Name: "Stage Module", UnitPrice: 150},
			},
		},
	}
}

func TestBuildTree_AggregatesQuantityAndPrice(t *testing.T) {
	resources := []models.EventResource{fixtureResource()}
	contracts := []models.Contract{
		{ID: "c-1", EventID: "ev-1", ResourceID: "res-1", SupplierID: "sup-1", ProductID: "prod-1", Quantity: 2, Price: 200, Status: models.ContractPending},
		{ID: "c-2", EventID: "ev-1", ResourceID: "res-1", SupplierID: "sup-2", ProductID: "prod-2", Quantity: 3, Price: 450, Status: models.ContractSealed},
	}

	tree := BuildTree(resources, contracts, fixtureSuppliers())

	assert.Len(t, tree, 1)
	root := tree[0]
	assert.Equal(t, "res-1", root.Key)
	assert.Equal(t, 5, root.Quantity)
	assert.Equal(t, 650.0, root.Price)
	assert.Equal(t, "3/10", root.Booked)
	assert.Equal(t, 100.0, root.UnitPrice)

	assert.Len(t, root.Suppliers, 2)
	first, second := root.Suppliers[0], root.Suppliers[1]

	assert.Equal(t, "res-1:sup-1", first.Key)
	assert.Equal(t, "Spaces Inc", first.Name)
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, 200.0, first.Price)
	assert.Len(t, first.Products, 1)
	assert.Equal(t, "res-1:sup-1:prod-1", first.Products[0].Key)
	assert.Equal(t, "Folding Chair", first.Products[0].Name)
	assert.Equal(t, "awaiting acceptance", first.Products[0].Status)
	assert.Equal(t, "m2", first.Products[0].Unit, "leaf unit comes from the resource")

	assert.Equal(t, 3, second.Quantity)
	assert.Equal(t, 450.0, second.Price)
	assert.Equal(t, "accepted", second.Products[0].Status)
}

func TestBuildTree_GroupsContractsOfSameSupplier(t *testing.T) {
	suppliers := fixtureSuppliers()
	suppliers[0].Products = append(suppliers[0].Products, models.SupplierProduct{
		ID: "prod-3", SupplierID: "sup-1", Name: "Round Table", UnitPrice: 80,
	})

	contracts := []models.Contract{
		{ID: "c-1", ResourceID: "res-1", SupplierID: "sup-1", ProductID: "prod-1", Quantity: 2, Price: 200, Status: models.ContractPending},
		{ID: "c-2", ResourceID: "res-1", SupplierID: "sup-1", ProductID: "prod-3", Quantity: 4, Price: 320, Status: models.ContractPending},
	}

	tree := BuildTree([]models.EventResource{fixtureResource()}, contracts, suppliers)

	assert.Len(t, tree[0].Suppliers, 1)
	sup := tree[0].Suppliers[0]
	assert.Equal(t, 6, sup.Quantity)
	assert.Equal(t, 520.0, sup.Price)
	assert.Len(t, sup.Products, 2)
}

func TestBuildTree_UnknownSupplierAndProduct(t *testing.T) {
	contracts := []models.Contract{
		{ID: "c-1", ResourceID: "res-1", SupplierID: "gone-supplier", ProductID: "gone-product", Quantity: 1, Price: 50, Status: models.ContractPending},
	}

	tree := BuildTree([]models.EventResource{fixtureResource()}, contracts, nil)

	sup := tree[0].Suppliers[0]
	assert.Equal(t, "unknown supplier", sup.Name)
	assert.Equal(t, "unknown product", sup.Products[0].Name)
	assert.Equal(t, 1, tree[0].Quantity, "orphan contracts still aggregate")
}

func TestBuildTree_FillStatus(t *testing.T) {
	cases := []struct {
		name     string
		reserved int
		want     FillStatus
	}{
		{"under", 3, FillUnder},
		{"exact", 10, FillExact},
		{"over", 12, FillOver},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := fixtureResource()
			res.Reserved = tc.reserved
			tree := BuildTree([]models.EventResource{res}, nil, nil)
			assert.Equal(t, tc.want, tree[0].Fill)
		})
	}
}

func TestBuildTree_PrivateResourceHidesPrice(t *testing.T) {
	res := fixtureResource()
	res.IsPublic = false

	tree := BuildTree([]models.EventResource{res}, nil, nil)

	assert.False(t, tree[0].IsPublic)
	assert.Zero(t, tree[0].UnitPrice)
}

func TestBuildTree_Deterministic(t *testing.T) {
	resources := []models.EventResource{fixtureResource()}
	contracts := []models.Contract{
		{ID: "c-1", ResourceID: "res-1", SupplierID: "sup-1", ProductID: "prod-1", Quantity: 2, Price: 200, Status: models.ContractPending},
		{ID: "c-2", ResourceID: "res-1", SupplierID: "sup-2", ProductID: "prod-2", Quantity: 3, Price: 450, Status: models.ContractSealed},
	}
	suppliers := fixtureSuppliers()

	first := BuildTree(resources, contracts, suppliers)
	second := BuildTree(resources, contracts, suppliers)

	assert.True(t, reflect.DeepEqual(first, second))
}

func TestBuildTree_ResourceWithoutContracts(t *testing.T) {
	tree := BuildTree([]models.EventResource{fixtureResource()}, nil, nil)

	assert.Len(t, tree, 1)
	assert.Empty(t, tree[0].Suppliers)
	assert.Zero(t, tree[0].Quantity)
	assert.Zero(t, tree[0].Price)
}
