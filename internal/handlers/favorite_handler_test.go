package handlers_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/internal/handlers"
	"estatehub/internal/repository"
	"estatehub/model"
	"estatehub/services"
)

// newFavoriteApp wires the favorite routes over in-memory stores, with a
// test middleware that trusts X-User-ID the way the JWT middleware trusts
// a parsed token.
func newFavoriteApp(users *repository.MemStore[model.User], estates *repository.MemStore[model.Estate]) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if uid := c.Get("X-User-ID"); uid != "" {
			c.Locals("user_id", uid)
		}
		return c.Next()
	})

	h := handlers.NewFavoriteHandler(services.NewFavoriteService(users, estates))
	app.Post("/estates/:estateId/favorite", h.Add)
	app.Delete("/estates/:estateId/favorite", h.Remove)
	app.Get("/estates/:estateId/can-favorite", h.CanFavorite)
	return app
}

func seedUserAndEstate(t *testing.T, users *repository.MemStore[model.User], estates *repository.MemStore[model.Estate]) (owner, fan *model.User, estate *model.Estate) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	owner = &model.User{ID: bson.NewObjectID(), Username: "owner", CreatedAt: now}
	fan = &model.User{ID: bson.NewObjectID(), Username: "fan", CreatedAt: now}
	if err := users.Insert(ctx, owner); err != nil {
		t.Fatal(err)
	}
	if err := users.Insert(ctx, fan); err != nil {
		t.Fatal(err)
	}

	estate = &model.Estate{ID: bson.NewObjectID(), Title: "Flat", UserID: owner.ID, CreatedAt: now}
	if err := estates.Insert(ctx, estate); err != nil {
		t.Fatal(err)
	}
	return owner, fan, estate
}

func TestFavoriteEndpoints(t *testing.T) {
	users := repository.NewMemStore[model.User]()
	estates := repository.NewMemStore[model.Estate]()
	app := newFavoriteApp(users, estates)
	owner, fan, estate := seedUserAndEstate(t, users, estates)

	do := func(method, url, uid string) int {
		t.Helper()
		req := httptest.NewRequest(method, url, nil)
		if uid != "" {
			req.Header.Set("X-User-ID", uid)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		return resp.StatusCode
	}

	favURL := "/estates/" + estate.ID.Hex() + "/favorite"
	canURL := "/estates/" + estate.ID.Hex() + "/can-favorite"

	if code := do("POST", favURL, ""); code != fiber.StatusUnauthorized {
		t.Errorf("anonymous add: status %d, want 401", code)
	}
	if code := do("POST", favURL, owner.ID.Hex()); code != fiber.StatusBadRequest {
		t.Errorf("owner self-favorite: status %d, want 400", code)
	}
	if code := do("POST", favURL, fan.ID.Hex()); code != fiber.StatusCreated {
		t.Errorf("add: status %d, want 201", code)
	}
	if code := do("POST", favURL, fan.ID.Hex()); code != fiber.StatusBadRequest {
		t.Errorf("repeat add: status %d, want 400", code)
	}
	if code := do("GET", canURL, fan.ID.Hex()); code != fiber.StatusOK {
		t.Errorf("can-favorite: status %d, want 200", code)
	}
	if code := do("DELETE", favURL, fan.ID.Hex()); code != fiber.StatusOK {
		t.Errorf("remove: status %d, want 200", code)
	}
	if code := do("DELETE", favURL, fan.ID.Hex()); code != fiber.StatusBadRequest {
		t.Errorf("repeat remove: status %d, want 400", code)
	}
	if code := do("POST", "/estates/"+bson.NewObjectID().Hex()+"/favorite", fan.ID.Hex()); code != fiber.StatusNotFound {
		t.Errorf("missing estate: status %d, want 404", code)
	}
}
