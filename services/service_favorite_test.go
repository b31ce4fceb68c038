package services_test

import (
	"context"
	"errors"
	"testing"

	"estatehub/services"
)

func TestFavoriteMirrorSymmetry(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	owner := fx.newUser(t, "owner")
	fan := fx.newUser(t, "fan")
	estate := fx.newEstate(t, owner.ID, "Lakeside flat")

	if err := fx.favSvc.Add(ctx, fan.ID, estate.ID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}

	if u := fx.user(t, fan.ID); !containsID(u.FavoriteEstateIDs, estate.ID) {
		t.Error("estate id missing from user.favoriteEstateIds after add")
	}
	if e := fx.estate(t, estate.ID); !containsID(e.FavoritedByUserIDs, fan.ID) {
		t.Error("user id missing from estate.favoritedByUsersIds after add")
	}

	if err := fx.favSvc.Remove(ctx, fan.ID, estate.ID); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}

	if u := fx.user(t, fan.ID); containsID(u.FavoriteEstateIDs, estate.ID) {
		t.Error("estate id still in user.favoriteEstateIds after remove")
	}
	if e := fx.estate(t, estate.ID); containsID(e.FavoritedByUserIDs, fan.ID) {
		t.Error("user id still in estate.favoritedByUsersIds after remove")
	}
}

func TestFavoriteRepeatToggles(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	owner := fx.newUser(t, "owner")
	fan := fx.newUser(t, "fan")
	estate := fx.newEstate(t, owner.ID, "Row house")

	if err := fx.favSvc.Add(ctx, fan.ID, estate.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := fx.favSvc.Add(ctx, fan.ID, estate.ID); !errors.Is(err, services.ErrAlreadyFavorite) {
		t.Fatalf("second add: err=%v, want ErrAlreadyFavorite", err)
	}

	if err := fx.favSvc.Remove(ctx, fan.ID, estate.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := fx.favSvc.Remove(ctx, fan.ID, estate.ID); !errors.Is(err, services.ErrNotFavorite) {
		t.Fatalf("second remove: err=%v, want ErrNotFavorite", err)
	}
}

func TestSelfFavoriteRejected(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	owner := fx.newUser(t, "owner")
	estate := fx.newEstate(t, owner.ID, "Own home")

	if err := fx.favSvc.Add(ctx, owner.ID, estate.ID); !errors.Is(err, services.ErrOwnEstate) {
		t.Fatalf("add own estate: err=%v, want ErrOwnEstate", err)
	}

	ok, err := fx.favSvc.CanFavorite(ctx, owner.ID, estate.ID)
	if err != nil {
		t.Fatalf("can-favorite: %v", err)
	}
	if ok {
		t.Error("CanFavorite(owner, ownEstate) = true, want false")
	}
}

func TestCanFavorite(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	owner := fx.newUser(t, "owner")
	fan := fx.newUser(t, "fan")
	estate := fx.newEstate(t, owner.ID, "Cottage")

	ok, err := fx.favSvc.CanFavorite(ctx, fan.ID, estate.ID)
	if err != nil || !ok {
		t.Fatalf("before add: ok=%v err=%v, want true <nil>", ok, err)
	}

	if err := fx.favSvc.Add(ctx, fan.ID, estate.ID); err != nil {
		t.Fatal(err)
	}
	ok, err = fx.favSvc.CanFavorite(ctx, fan.ID, estate.ID)
	if err != nil || ok {
		t.Fatalf("after add: ok=%v err=%v, want false <nil>", ok, err)
	}

	// A deleted estate is a not-found error, not a silent false.
	if err := fx.cascade.DeleteEstate(ctx, estate.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := fx.favSvc.CanFavorite(ctx, fan.ID, estate.ID); !errors.Is(err, services.ErrEstateNotFound) {
		t.Fatalf("deleted estate: err=%v, want ErrEstateNotFound", err)
	}
}
