package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Broannn/BookNest-RestAPI/models"
)

// In-memory stand-ins for the data_access repositories. They implement the
// same uniqueness rules the mongo indexes enforce so the services can be
// exercised without a database.

type fakeUserStore struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return models.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) List(ctx context.Context, skip, limit int) ([]models.User, int64, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserStore) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if v, ok := fields["username"]; ok {
		u.Username = v.(string)
	}
	if v, ok := fields["email"]; ok {
		u.Email = v.(string)
	}
	if v, ok := fields["password"]; ok {
		u.Password = v.(string)
	}
	u.UpdatedAt = time.Now()
	return u, nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.users[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeBookStore struct {
	books map[primitive.ObjectID]*models.Book
}

func newFakeBookStore() *fakeBookStore {
	return &fakeBookStore{books: make(map[primitive.ObjectID]*models.Book)}
}

func (f *fakeBookStore) Create(ctx context.Context, book *models.Book) error {
	book.ID = primitive.NewObjectID()
	book.CreatedAt = time.Now()
	book.UpdatedAt = book.CreatedAt
	if book.Genres == nil {
		book.Genres = []primitive.ObjectID{}
	}
	f.books[book.ID] = book
	return nil
}

func (f *fakeBookStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BookDetail, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &models.BookDetail{Book: *b}, nil
}

func (f *fakeBookStore) List(ctx context.Context, skip, limit int) ([]models.BookDetail, int64, error) {
	out := []models.BookDetail{}
	for _, b := range f.books {
		out = append(out, models.BookDetail{Book: *b})
	}
	return out, int64(len(out)), nil
}

func (f *fakeBookStore) FindByGenre(ctx context.Context, genreID primitive.ObjectID) ([]models.BookDetail, error) {
	out := []models.BookDetail{}
	for _, b := range f.books {
		for _, g := range b.Genres {
			if g == genreID {
				out = append(out, models.BookDetail{Book: *b})
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBookStore) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if v, ok := fields["title"]; ok {
		b.Title = v.(string)
	}
	if v, ok := fields["author_id"]; ok {
		b.AuthorID = v.(primitive.ObjectID)
	}
	if v, ok := fields["publication_date"]; ok {
		b.PublicationDate = v.(time.Time)
	}
	if v, ok := fields["summary"]; ok {
		b.Summary = v.(string)
	}
	if v, ok := fields["cover_image"]; ok {
		b.CoverImage = v.(string)
	}
	if v, ok := fields["genres"]; ok {
		b.Genres = v.([]primitive.ObjectID)
	}
	b.UpdatedAt = time.Now()
	return b, nil
}

func (f *fakeBookStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.books[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.books, id)
	return nil
}

type pair struct {
	a, b primitive.ObjectID
}

type fakeUserBookStore struct {
	facts map[pair]*models.UserBookFact
}

func newFakeUserBookStore() *fakeUserBookStore {
	return &fakeUserBookStore{facts: make(map[pair]*models.UserBookFact)}
}

func (f *fakeUserBookStore) Insert(ctx context.Context, userID, bookID primitive.ObjectID) (*models.UserBookFact, error) {
	key := pair{userID, bookID}
	if _, ok := f.facts[key]; ok {
		return nil, models.ErrDuplicate
	}
	fact := &models.UserBookFact{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.facts[key] = fact
	return fact, nil
}

func (f *fakeUserBookStore) FindByPair(ctx context.Context, userID, bookID primitive.ObjectID) (*models.UserBookFact, error) {
	fact, ok := f.facts[pair{userID, bookID}]
	if !ok {
		return nil, models.ErrNotFound
	}
	return fact, nil
}

func (f *fakeUserBookStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.UserBookEntry, error) {
	out := []models.UserBookEntry{}
	for _, fact := range f.facts {
		if fact.UserID == userID {
			out = append(out, models.UserBookEntry{UserBookFact: *fact})
		}
	}
	return out, nil
}

func (f *fakeUserBookStore) ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.BookReader, error) {
	out := []models.BookReader{}
	for _, fact := range f.facts {
		if fact.BookID == bookID {
			out = append(out, models.BookReader{UserBookFact: *fact})
		}
	}
	return out, nil
}

func (f *fakeUserBookStore) Delete(ctx context.Context, userID, bookID primitive.ObjectID) error {
	key := pair{userID, bookID}
	if _, ok := f.facts[key]; !ok {
		return models.ErrNotFound
	}
	delete(f.facts, key)
	return nil
}

type fakeCritiqueStore struct {
	critiques map[primitive.ObjectID]*models.Critique
}

func newFakeCritiqueStore() *fakeCritiqueStore {
	return &fakeCritiqueStore{critiques: make(map[primitive.ObjectID]*models.Critique)}
}

func (f *fakeCritiqueStore) Insert(ctx context.Context, critique *models.Critique) error {
	for _, c := range f.critiques {
		if c.UserID == critique.UserID && c.BookID == critique.BookID {
			return models.ErrDuplicate
		}
	}
	critique.ID = primitive.NewObjectID()
	critique.CreatedAt = time.Now()
	critique.UpdatedAt = critique.CreatedAt
	f.critiques[critique.ID] = critique
	return nil
}

func (f *fakeCritiqueStore) ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.CritiqueWithAuthor, error) {
	out := []models.CritiqueWithAuthor{}
	for _, c := range f.critiques {
		if c.BookID == bookID {
			out = append(out, models.CritiqueWithAuthor{Critique: *c})
		}
	}
	return out, nil
}

func (f *fakeCritiqueStore) FindByUserAndBook(ctx context.Context, userID, bookID primitive.ObjectID) (*models.Critique, error) {
	for _, c := range f.critiques {
		if c.UserID == userID && c.BookID == bookID {
			return c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeCritiqueStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Critique, error) {
	c, ok := f.critiques[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return c, nil
}

func (f *fakeCritiqueStore) Update(ctx context.Context, id primitive.ObjectID, rating int, comment string) (*models.Critique, error) {
	c, ok := f.critiques[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	c.Rating = rating
	c.Comment = comment
	c.UpdatedAt = time.Now()
	return c, nil
}

func (f *fakeCritiqueStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.critiques[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.critiques, id)
	return nil
}

type fakeBookOfDayStore struct {
	records map[primitive.ObjectID]*models.BookOfDay
}

func newFakeBookOfDayStore() *fakeBookOfDayStore {
	return &fakeBookOfDayStore{records: make(map[primitive.ObjectID]*models.BookOfDay)}
}

func (f *fakeBookOfDayStore) Insert(ctx context.Context, bod *models.BookOfDay) error {
	bod.ID = primitive.NewObjectID()
	bod.CreatedAt = time.Now()
	bod.UpdatedAt = bod.CreatedAt
	if bod.Discussions == nil {
		bod.Discussions = []models.Discussion{}
	}
	f.records[bod.ID] = bod
	return nil
}

// List mirrors the repository's newest-date-first ordering.
func (f *fakeBookOfDayStore) List(ctx context.Context) ([]models.BookOfDayWithBook, error) {
	out := []models.BookOfDayWithBook{}
	for _, bod := range f.records {
		out = append(out, models.BookOfDayWithBook{BookOfDay: *bod})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeBookOfDayStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BookOfDay, error) {
	bod, ok := f.records[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return bod, nil
}

func (f *fakeBookOfDayStore) PushDiscussion(ctx context.Context, id primitive.ObjectID, discussion *models.Discussion) error {
	bod, ok := f.records[id]
	if !ok {
		return models.ErrNotFound
	}
	bod.Discussions = append(bod.Discussions, *discussion)
	bod.UpdatedAt = time.Now()
	return nil
}

func (f *fakeBookOfDayStore) ListDiscussions(ctx context.Context, id primitive.ObjectID) ([]models.DiscussionWithUser, error) {
	bod, ok := f.records[id]
	if !ok {
		return []models.DiscussionWithUser{}, nil
	}
	out := make([]models.DiscussionWithUser, 0, len(bod.Discussions))
	for _, d := range bod.Discussions {
		out = append(out, models.DiscussionWithUser{Discussion: d})
	}
	return out, nil
}

func (f *fakeBookOfDayStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.records[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.records, id)
	return nil
}
