package usecase

import (
	"context"
	"errors"
	"fmt"

	"media-catalog/internal/data/entity"
	"media-catalog/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests. They enforce the same
// uniqueness rules the schema does, so duplicate paths behave like the
// real thing.

func newMemRepository() *repository.Repository {
	genres := &memGenreRepo{genres: map[string]*entity.Genre{}}
	return &repository.Repository{
		User:       &memUserRepo{users: map[uuid.UUID]*entity.User{}},
		Category:   &memCategoryRepo{categories: map[uuid.UUID]*entity.Category{}},
		Genre:      genres,
		Title:      &memTitleRepo{titles: map[uuid.UUID]*entity.Title{}},
		TitleGenre: &memTitleGenreRepo{genres: genres},
		Review:     &memReviewRepo{reviews: map[uuid.UUID]*entity.Review{}},
		Comment:    &memCommentRepo{comments: map[uuid.UUID]*entity.Comment{}},
	}
}

// ---------------- users ----------------

type memUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (m *memUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("insert user: %w", repository.ErrDuplicate)
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByUsernameAndEmail(_ context.Context, username, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == username && u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *memUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return nil
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserRepo) UpdateConfirmationCode(_ context.Context, id uuid.UUID, code int) error {
	u, ok := m.users[id]
	if !ok {
		return errors.New("user not found")
	}
	c := code
	u.ConfirmationCode = &c
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

// ---------------- categories ----------------

type memCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (m *memCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	for _, c := range m.categories {
		if c.Slug == category.Slug {
			return fmt.Errorf("insert category: %w", repository.ErrDuplicate)
		}
	}
	cp := *category
	m.categories[category.ID] = &cp
	return nil
}

func (m *memCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCategoryRepo) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	for _, c := range m.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(m.categories))
	for _, c := range m.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.categories)), nil
}

func (m *memCategoryRepo) DeleteBySlug(_ context.Context, slug string) error {
	for id, c := range m.categories {
		if c.Slug == slug {
			delete(m.categories, id)
			return nil
		}
	}
	return nil
}

// ---------------- genres ----------------

type memGenreRepo struct {
	genres map[string]*entity.Genre
}

func (m *memGenreRepo) Create(_ context.Context, genre *entity.Genre) error {
	if _, ok := m.genres[genre.Slug]; ok {
		return fmt.Errorf("insert genre: %w", repository.ErrDuplicate)
	}
	cp := *genre
	m.genres[genre.Slug] = &cp
	return nil
}

func (m *memGenreRepo) FindBySlug(_ context.Context, slug string) (*entity.Genre, error) {
	g, ok := m.genres[slug]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (m *memGenreRepo) List(_ context.Context, limit, offset int) ([]*entity.Genre, error) {
	out := make([]*entity.Genre, 0, len(m.genres))
	for _, g := range m.genres {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memGenreRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.genres)), nil
}

func (m *memGenreRepo) DeleteBySlug(_ context.Context, slug string) error {
	delete(m.genres, slug)
	return nil
}

// ---------------- titles ----------------

type memTitleRepo struct {
	titles map[uuid.UUID]*entity.Title
}

func (m *memTitleRepo) Create(_ context.Context, title *entity.Title) error {
	cp := *title
	m.titles[title.ID] = &cp
	return nil
}

func (m *memTitleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Title, error) {
	t, ok := m.titles[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *memTitleRepo) List(_ context.Context, limit, offset int) ([]*entity.Title, error) {
	out := make([]*entity.Title, 0, len(m.titles))
	for _, t := range m.titles {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memTitleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.titles)), nil
}

func (m *memTitleRepo) Update(_ context.Context, title *entity.Title) error {
	if _, ok := m.titles[title.ID]; !ok {
		return nil
	}
	cp := *title
	m.titles[title.ID] = &cp
	return nil
}

func (m *memTitleRepo) UpdateRating(_ context.Context, id uuid.UUID, rating int) error {
	t, ok := m.titles[id]
	if !ok {
		return errors.New("title not found")
	}
	r := rating
	t.Rating = &r
	return nil
}

func (m *memTitleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.titles, id)
	return nil
}

// ---------------- title genres ----------------

type memTitleGenreRepo struct {
	links  []*entity.TitleGenre
	genres *memGenreRepo
}

func (m *memTitleGenreRepo) Add(_ context.Context, titleGenre *entity.TitleGenre) error {
	for _, l := range m.links {
		if l.TitleID == titleGenre.TitleID && l.GenreID == titleGenre.GenreID {
			return fmt.Errorf("insert title genre: %w", repository.ErrDuplicate)
		}
	}
	cp := *titleGenre
	m.links = append(m.links, &cp)
	return nil
}

func (m *memTitleGenreRepo) DeleteByTitleID(_ context.Context, titleID uuid.UUID) error {
	kept := m.links[:0]
	for _, l := range m.links {
		if l.TitleID != titleID {
			kept = append(kept, l)
		}
	}
	m.links = kept
	return nil
}

func (m *memTitleGenreRepo) ListGenresByTitleID(_ context.Context, titleID uuid.UUID) ([]*entity.Genre, error) {
	out := []*entity.Genre{}
	for _, l := range m.links {
		if l.TitleID != titleID {
			continue
		}
		for _, g := range m.genres.genres {
			if g.ID == l.GenreID {
				cp := *g
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

// ---------------- reviews ----------------

type memReviewRepo struct {
	reviews map[uuid.UUID]*entity.Review
}

func (m *memReviewRepo) Create(_ context.Context, review *entity.Review) error {
	for _, r := range m.reviews {
		if r.TitleID == review.TitleID && r.AuthorID == review.AuthorID {
			return fmt.Errorf("insert review: %w", repository.ErrDuplicate)
		}
	}
	cp := *review
	m.reviews[review.ID] = &cp
	return nil
}

func (m *memReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r, ok := m.reviews[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memReviewRepo) FindByTitleID(_ context.Context, titleID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	out := []*entity.Review{}
	for _, r := range m.reviews {
		if r.TitleID == titleID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memReviewRepo) CountByTitleID(_ context.Context, titleID uuid.UUID) (int64, error) {
	var n int64
	for _, r := range m.reviews {
		if r.TitleID == titleID {
			n++
		}
	}
	return n, nil
}

func (m *memReviewRepo) FindByTitleAndAuthor(_ context.Context, titleID, authorID uuid.UUID) (*entity.Review, error) {
	for _, r := range m.reviews {
		if r.TitleID == titleID && r.AuthorID == authorID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r, ok := m.reviews[review.ID]
	if !ok {
		return nil
	}
	r.Text = review.Text
	r.Score = review.Score
	return nil
}

func (m *memReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.reviews, id)
	return nil
}

func (m *memReviewRepo) ScoreStatsByTitleID(_ context.Context, titleID uuid.UUID) (float64, int64, error) {
	var sum, n int64
	for _, r := range m.reviews {
		if r.TitleID == titleID {
			sum += int64(r.Score)
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(n), n, nil
}

// ---------------- comments ----------------

type memCommentRepo struct {
	comments map[uuid.UUID]*entity.Comment
}

func (m *memCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	cp := *comment
	m.comments[comment.ID] = &cp
	return nil
}

func (m *memCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCommentRepo) FindByReviewID(_ context.Context, reviewID uuid.UUID, limit, offset int) ([]*entity.Comment, error) {
	out := []*entity.Comment{}
	for _, c := range m.comments {
		if c.ReviewID == reviewID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memCommentRepo) CountByReviewID(_ context.Context, reviewID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range m.comments {
		if c.ReviewID == reviewID {
			n++
		}
	}
	return n, nil
}

func (m *memCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	c, ok := m.comments[comment.ID]
	if !ok {
		return nil
	}
	c.Text = comment.Text
	return nil
}

func (m *memCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.comments, id)
	return nil
}

// ---------------- mailer ----------------

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	fail bool
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.fail {
		return errors.New("smtp dial failed")
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}
