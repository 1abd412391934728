package usecase

import (
	"context"
	"time"

	"botenwerf/internal/domain/entities"
	"botenwerf/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	gomockAny               = gomock.Any()
	gomockAssignableProject = gomock.AssignableToTypeOf(entities.Project{})
)

// testProject builds a project with two included items (hull 2x150, engine
// 1x9700) and one excluded option, totals recalculated.
func testProject(status entities.ProjectStatus) entities.Project {
	engineCost := 6500.0
	p := entities.Project{
		ID:            "p-1",
		ProjectNumber: "BW-0001",
		Title:         "Sloop 720",
		Type:          entities.ProjectTypeNewBuild,
		Status:        status,
		ClientID:      "c-1",
		Revision:      1,
		Configuration: entities.Configuration{
			VatRate: 21,
			Items: []entities.ConfigurationItem{
				{ID: "item-hull", Description: "Hull plating", Quantity: 2, Unit: "pcs", UnitPriceExclVat: 150, IsIncluded: true, SortOrder: 0},
				{ID: "item-engine", Description: "Inboard engine", Quantity: 1, Unit: "pcs", UnitPriceExclVat: 9700, UnitCostExclVat: &engineCost, IsIncluded: true, SortOrder: 1},
				{ID: "item-teak", Description: "Teak deck option", Quantity: 1, Unit: "pcs", UnitPriceExclVat: 4000, IsIncluded: false, SortOrder: 2},
			},
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	p.Configuration.Recalculate()
	return p
}

// expectUpdate wires the Update expectation to behave like the repository:
// bump the revision and echo the aggregate back.
func expectUpdate(repo *mocks.MockIProjectRepository) *entities.Project {
	saved := &entities.Project{}
	repo.EXPECT().Update(gomockAny, gomockAssignableProject).DoAndReturn(
		func(_ context.Context, p entities.Project) (entities.Project, error) {
			p.Revision++
			*saved = p
			return p, nil
		},
	)
	return saved
}
