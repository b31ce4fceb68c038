package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"estatehub/dto"
	"estatehub/internal/validate"
	"estatehub/services"
)

func TestEstateCreateRequiresImages(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	owner := fx.newUser(t, "owner")
	_, err := fx.estateSvc.Create(ctx, owner.ID, dto.CreateEstateDTO{Title: "No photos", Price: 1000}, nil)
	if !errors.Is(err, validate.ErrInvalid) {
		t.Fatalf("err=%v, want ErrInvalid", err)
	}
}

func TestEstateCreateLinksOwner(t *testing.T) {
	fx := newFixture()

	owner := fx.newUser(t, "owner")
	estate := fx.newEstate(t, owner.ID, "Villa")

	if u := fx.user(t, owner.ID); !containsID(u.EstateIDs, estate.ID) {
		t.Error("estate id missing from owner.estateIds")
	}
	if estate.UserID != owner.ID {
		t.Error("estate.userId does not point at the owner")
	}
	if len(estate.Images) == 0 {
		t.Error("estate created without stored image paths")
	}
}

func TestEstateUpdateOwnerOnly(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	owner := fx.newUser(t, "owner")
	stranger := fx.newUser(t, "stranger")
	estate := fx.newEstate(t, owner.ID, "Cabin")

	newTitle := "Renovated cabin"
	if _, err := fx.estateSvc.Update(ctx, stranger.ID, estate.ID, dto.UpdateEstateDTO{Title: &newTitle}, nil); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("stranger update: err=%v, want ErrForbidden", err)
	}

	updated, err := fx.estateSvc.Update(ctx, owner.ID, estate.ID, dto.UpdateEstateDTO{Title: &newTitle}, nil)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != newTitle {
		t.Errorf("title = %q, want %q", updated.Title, newTitle)
	}
}

func TestEstateListPaginationDeterminism(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	owner := fx.newUser(t, "owner")
	titles := make([]string, 6)
	for i := range titles {
		titles[i] = fmt.Sprintf("Estate %d", i+1)
		fx.newEstate(t, owner.ID, titles[i])
	}

	// Page 3 of size 2 over 6 estates is exactly items 5 and 6.
	items, total, err := fx.estateSvc.List(ctx, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if total != 6 {
		t.Errorf("totalLength = %d, want 6", total)
	}
	if len(items) != 2 || items[0].Title != titles[4] || items[1].Title != titles[5] {
		got := make([]string, 0, len(items))
		for _, e := range items {
			got = append(got, e.Title)
		}
		t.Errorf("page 3 = %v, want [%s %s]", got, titles[4], titles[5])
	}

	// Page 4 is empty but still reports the full total.
	items, total, err = fx.estateSvc.List(ctx, 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("page 4 has %d items, want 0", len(items))
	}
	if total != 6 {
		t.Errorf("totalLength on empty page = %d, want 6", total)
	}
}
