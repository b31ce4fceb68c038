package services_test

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"estatehub/dto"
	"estatehub/internal/repository"
	"estatehub/model"
	"estatehub/services"
)

// fakeImages satisfies services.ImageStore without touching the disk and
// records what was deleted so cascades can be checked.
type fakeImages struct {
	saved   int
	deleted []string
}

func (f *fakeImages) Save(file *multipart.FileHeader) (string, error) {
	f.saved++
	return fmt.Sprintf("img-%d.jpg", f.saved), nil
}

func (f *fakeImages) Delete(path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

type fixture struct {
	users    *repository.MemStore[model.User]
	estates  *repository.MemStore[model.Estate]
	posts    *repository.MemStore[model.Post]
	comments *repository.MemStore[model.Comment]
	images   *fakeImages

	userSvc    *services.UserService
	estateSvc  *services.EstateService
	postSvc    *services.PostService
	commentSvc *services.CommentService
	favSvc     *services.FavoriteService
	cascade    *services.CascadeService
}

func newFixture() *fixture {
	fx := &fixture{
		users:    repository.NewMemStore[model.User](),
		estates:  repository.NewMemStore[model.Estate](),
		posts:    repository.NewMemStore[model.Post](),
		comments: repository.NewMemStore[model.Comment](),
		images:   &fakeImages{},
	}
	fx.userSvc = services.NewUserService(fx.users)
	fx.estateSvc = services.NewEstateService(fx.estates, fx.users, fx.images)
	fx.postSvc = services.NewPostService(fx.posts, fx.users, fx.estates)
	fx.commentSvc = services.NewCommentService(fx.comments, fx.posts, fx.users)
	fx.favSvc = services.NewFavoriteService(fx.users, fx.estates)
	fx.cascade = services.NewCascadeService(fx.users, fx.estates, fx.posts, fx.comments, fx.images)
	return fx
}

func (fx *fixture) newUser(t *testing.T, username string) *model.User {
	t.Helper()
	user, err := fx.userSvc.Register(context.Background(), username, username+"@example.com", "secret1")
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}

func (fx *fixture) newEstate(t *testing.T, ownerID bson.ObjectID, title string) *model.Estate {
	t.Helper()
	estate, err := fx.estateSvc.Create(
		context.Background(),
		ownerID,
		dto.CreateEstateDTO{Title: title, Description: "test estate", Price: 100000},
		[]*multipart.FileHeader{{Filename: "front.jpg"}},
	)
	if err != nil {
		t.Fatalf("create estate %s: %v", title, err)
	}
	return estate
}

func (fx *fixture) newPost(t *testing.T, authorID bson.ObjectID, title string, estateID *bson.ObjectID) *model.Post {
	t.Helper()
	body := dto.CreatePostDTO{Title: title, Content: "some content"}
	if estateID != nil {
		body.EstateID = estateID.Hex()
	}
	post, err := fx.postSvc.Create(context.Background(), authorID, body)
	if err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	return post
}

func (fx *fixture) newComment(t *testing.T, authorID, postID bson.ObjectID, content string) *model.Comment {
	t.Helper()
	comment, err := fx.commentSvc.Create(context.Background(), authorID, postID, content)
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	return comment
}

func (fx *fixture) user(t *testing.T, id bson.ObjectID) *model.User {
	t.Helper()
	user, err := fx.users.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("reload user %s: %v", id.Hex(), err)
	}
	return user
}

func (fx *fixture) estate(t *testing.T, id bson.ObjectID) *model.Estate {
	t.Helper()
	estate, err := fx.estates.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("reload estate %s: %v", id.Hex(), err)
	}
	return estate
}

func containsID(ids []bson.ObjectID, id bson.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
