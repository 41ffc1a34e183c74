package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"voya/internal/models/db_models"
)

// In-memory repository fakes. They mirror the gorm-backed behavior the
// services rely on: not-found reads return (nil, nil) and inserts assign
// an id when none is set.

type fakeUserRepo struct {
	users map[uuid.UUID]*db_models.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*db_models.User)}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if f.err != nil {
		return f.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	user, _ := f.FindByEmail(ctx, email)
	return user != nil, nil
}

func (f *fakeUserRepo) ExistsByEmailAndNotID(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, user := range f.users {
		if user.Email == email && user.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *db_models.User) error {
	if f.err != nil {
		return f.err
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, user *db_models.User) error {
	if f.err != nil {
		return f.err
	}
	delete(f.users, user.ID)
	return nil
}

type fakeBoardRepo struct {
	boards map[uuid.UUID]*db_models.Board
	err    error
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{boards: make(map[uuid.UUID]*db_models.Board)}
}

func (f *fakeBoardRepo) Insert(ctx context.Context, board *db_models.Board) error {
	if f.err != nil {
		return f.err
	}
	if board.ID == uuid.Nil {
		board.ID = uuid.New()
	}
	f.boards[board.ID] = board
	return nil
}

func (f *fakeBoardRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Board, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.boards[id], nil
}

func (f *fakeBoardRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Board, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := make([]db_models.Board, 0, len(f.boards))
	for _, board := range f.boards {
		all = append(all, *board)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt > all[j].CreatedAt })

	offset := (page - 1) * pageSize
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeBoardRepo) Update(ctx context.Context, board *db_models.Board) error {
	if f.err != nil {
		return f.err
	}
	f.boards[board.ID] = board
	return nil
}

func (f *fakeBoardRepo) Delete(ctx context.Context, board *db_models.Board) error {
	if f.err != nil {
		return f.err
	}
	delete(f.boards, board.ID)
	return nil
}

func (f *fakeBoardRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if board, ok := f.boards[id]; ok {
		board.ViewCount++
	}
	return nil
}

func (f *fakeBoardRepo) IncrementReportCount(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if board, ok := f.boards[id]; ok {
		board.ReportCount++
	}
	return nil
}

type fakeCommentRepo struct {
	comments map[uuid.UUID]*db_models.Comment
	err      error
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uuid.UUID]*db_models.Comment)}
}

func (f *fakeCommentRepo) Insert(ctx context.Context, comment *db_models.Comment) error {
	if f.err != nil {
		return f.err
	}
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Comment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.comments[id], nil
}

func (f *fakeCommentRepo) ListByBoard(ctx context.Context, boardID uuid.UUID, page, pageSize int) ([]db_models.Comment, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	all := make([]db_models.Comment, 0)
	for _, comment := range f.comments {
		if comment.BoardID == boardID {
			all = append(all, *comment)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt > all[j].CreatedAt })

	offset := (page - 1) * pageSize
	if offset >= len(all) {
		return nil, false, nil
	}
	end := offset + pageSize
	hasNext := end < len(all)
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], hasNext, nil
}

func (f *fakeCommentRepo) Delete(ctx context.Context, comment *db_models.Comment) error {
	if f.err != nil {
		return f.err
	}
	delete(f.comments, comment.ID)
	return nil
}

type fakeCartRepo struct {
	carts map[uuid.UUID]*db_models.Cart
	err   error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[uuid.UUID]*db_models.Cart)}
}

func (f *fakeCartRepo) Insert(ctx context.Context, cart *db_models.Cart) error {
	if f.err != nil {
		return f.err
	}
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	f.carts[cart.ID] = cart
	return nil
}

func (f *fakeCartRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Cart, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.carts[id], nil
}

func (f *fakeCartRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Cart, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, cart := range f.carts {
		if cart.UserID == userID {
			return cart, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) Update(ctx context.Context, cart *db_models.Cart) error {
	if f.err != nil {
		return f.err
	}
	f.carts[cart.ID] = cart
	return nil
}

type fakeTourRepo struct {
	tours map[uuid.UUID]*db_models.Tour
	seq   int64
	err   error
}

func newFakeTourRepo() *fakeTourRepo {
	return &fakeTourRepo{tours: make(map[uuid.UUID]*db_models.Tour)}
}

func (f *fakeTourRepo) Insert(ctx context.Context, tour *db_models.Tour) error {
	if f.err != nil {
		return f.err
	}
	if tour.ID == uuid.Nil {
		tour.ID = uuid.New()
	}
	f.seq++
	tour.CreatedAt = f.seq
	f.tours[tour.ID] = tour
	return nil
}

func (f *fakeTourRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Tour, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tours[id], nil
}

func (f *fakeTourRepo) FindByCartAndContentID(ctx context.Context, cartID uuid.UUID, contentID string) (*db_models.Tour, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, tour := range f.tours {
		if tour.CartID == cartID && tour.ContentID == contentID {
			return tour, nil
		}
	}
	return nil, nil
}

func (f *fakeTourRepo) ListByCart(ctx context.Context, cartID uuid.UUID) ([]db_models.Tour, error) {
	if f.err != nil {
		return nil, f.err
	}
	tours := make([]db_models.Tour, 0)
	for _, tour := range f.tours {
		if tour.CartID == cartID {
			tours = append(tours, *tour)
		}
	}
	sort.Slice(tours, func(i, j int) bool { return tours[i].CreatedAt < tours[j].CreatedAt })
	return tours, nil
}

func (f *fakeTourRepo) Delete(ctx context.Context, tour *db_models.Tour) error {
	if f.err != nil {
		return f.err
	}
	delete(f.tours, tour.ID)
	return nil
}

func (f *fakeTourRepo) DeleteAllByCart(ctx context.Context, cartID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for id, tour := range f.tours {
		if tour.CartID == cartID {
			delete(f.tours, id)
		}
	}
	return nil
}

type fakeScheduleRepo struct {
	schedules map[uuid.UUID]*db_models.Schedule
	err       error
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[uuid.UUID]*db_models.Schedule)}
}

func (f *fakeScheduleRepo) Insert(ctx context.Context, schedule *db_models.Schedule) error {
	if f.err != nil {
		return f.err
	}
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}
	f.schedules[schedule.ID] = schedule
	return nil
}

func (f *fakeScheduleRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Schedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schedules[id], nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, schedule *db_models.Schedule) error {
	if f.err != nil {
		return f.err
	}
	f.schedules[schedule.ID] = schedule
	return nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, schedule *db_models.Schedule) error {
	if f.err != nil {
		return f.err
	}
	delete(f.schedules, schedule.ID)
	return nil
}
