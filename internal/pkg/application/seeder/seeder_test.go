package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/kbsync/wikibase/pkg/test"
	"github.com/matryer/is"
)

func TestSeedCreatesPropertiesAndItems(t *testing.T) {
	is := is.New(t)
	mock := mockedStore()

	app, err := New(mock, &Config{
		Language:   "en",
		Properties: []EntitySeed{{Label: "population", DataType: "Quantity"}},
		Items:      []EntitySeed{{Label: "Douglas Adams"}},
	})
	is.NoErr(err)

	createdIDs, err := app.Seed(context.Background())
	is.NoErr(err)

	is.Equal(createdIDs, []string{"P1", "Q1"})
	is.Equal(len(mock.CreateEntityCalls()), 2)
	is.Equal(mock.CreateEntityCalls()[0].Kind, "property")
	is.Equal(mock.CreateEntityCalls()[1].Kind, "item")
	is.Equal(len(mock.FetchEntitiesCalls()), 2) // each seed is verified with a fetch
}

func TestSeedFailsOnUnknownDataType(t *testing.T) {
	is := is.New(t)
	mock := mockedStore()

	app, err := New(mock, &Config{
		Properties: []EntitySeed{{Label: "broken", DataType: "Banana"}},
	})
	is.NoErr(err)

	_, err = app.Seed(context.Background())

	is.True(err != nil)
	is.Equal(len(mock.CreateEntityCalls()), 0) // validation failures stay local
}

func mockedStore() *test.StoreClientMock {
	nextItem := 0
	nextProperty := 0

	return &test.StoreClientMock{
		CreateEntityFunc: func(ctx context.Context, kind string, payload []byte) (json.RawMessage, error) {
			id := ""
			if kind == "property" {
				nextProperty++
				id = fmt.Sprintf("P%d", nextProperty)
			} else {
				nextItem++
				id = fmt.Sprintf("Q%d", nextItem)
			}

			return json.RawMessage(fmt.Sprintf(
				`{"entity":{"id":%q,"labels":{"en":{"language":"en","value":"seeded"}}},"success":1}`, id,
			)), nil
		},
		FetchEntitiesFunc: func(ctx context.Context, entityIDs []string, attributes []string) (json.RawMessage, error) {
			return json.RawMessage(fmt.Sprintf(
				`{"entities":{%q:{"id":%q}},"success":1}`, entityIDs[0], entityIDs[0],
			)), nil
		},
	}
}
