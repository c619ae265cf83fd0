package service

import (
	"alcyxob/fitvideo/internal/domain"
	"alcyxob/fitvideo/internal/repository"
	"context"
	"sort"
	"strings"
)

// fakeStore is an in-memory stand-in for the five collections. Repositories
// built on it record the operations they perform in calls.
type fakeStore struct {
	users    map[string]domain.User
	sessions map[string]domain.UserSession
	videos   map[string]domain.Video
	likes    map[string][]string
	quotes   []domain.Quote
	calls    []string
	failOn   map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[string]domain.User{},
		sessions: map[string]domain.UserSession{},
		videos:   map[string]domain.Video{},
		likes:    map[string][]string{},
		failOn:   map[string]error{},
	}
}

func (s *fakeStore) record(op string) error {
	s.calls = append(s.calls, op)
	return s.failOn[op]
}

func (s *fakeStore) callLog() string {
	return strings.Join(s.calls, ",")
}

// --- users ---

type fakeUserRepo struct{ s *fakeStore }

func (r fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if err := r.s.record("users.create"); err != nil {
		return err
	}
	if _, ok := r.s.users[user.UserName]; ok {
		return repository.ErrDuplicate
	}
	user.IsAdmin = domain.FlagNo
	user.IsRegistered = domain.FlagNo
	r.s.users[user.UserName] = *user
	return nil
}

func (r fakeUserRepo) GetByUserName(_ context.Context, userName string) (*domain.User, error) {
	if err := r.s.record("users.get"); err != nil {
		return nil, err
	}
	user, ok := r.s.users[userName]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	if err := r.s.record("users.list"); err != nil {
		return nil, err
	}
	users := []domain.User{}
	for _, u := range r.s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserName < users[j].UserName })
	return users, nil
}

func (r fakeUserRepo) GetPending(_ context.Context) ([]domain.PendingUser, error) {
	if err := r.s.record("users.pending"); err != nil {
		return nil, err
	}
	pending := []domain.PendingUser{}
	for _, u := range r.s.users {
		if u.IsRegistered == domain.FlagNo {
			pending = append(pending, domain.PendingUser{UserName: u.UserName, IsRegistered: u.IsRegistered})
		}
	}
	return pending, nil
}

func (r fakeUserRepo) UpdateDetails(_ context.Context, userName string, details domain.UserDetails) error {
	if err := r.s.record("users.update"); err != nil {
		return err
	}
	user, ok := r.s.users[userName]
	if !ok {
		return repository.ErrNotFound
	}
	user.Age, user.Height, user.Weight = measurement(details.Age), measurement(details.Height), measurement(details.Weight)
	r.s.users[userName] = user
	return nil
}

func (r fakeUserRepo) Register(_ context.Context, userName string) error {
	if err := r.s.record("users.register"); err != nil {
		return err
	}
	user, ok := r.s.users[userName]
	if !ok {
		return repository.ErrNotFound
	}
	user.IsRegistered = domain.FlagYes
	r.s.users[userName] = user
	return nil
}

func (r fakeUserRepo) Delete(_ context.Context, userName string) (*repository.DeleteResult, error) {
	if err := r.s.record("users.delete"); err != nil {
		return nil, err
	}
	if _, ok := r.s.users[userName]; !ok {
		return &repository.DeleteResult{}, nil
	}
	delete(r.s.users, userName)
	return &repository.DeleteResult{DeletedCount: 1}, nil
}

// measurement mirrors how a stored integer or null reads back.
func measurement(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

// --- sessions ---

type fakeSessionRepo struct{ s *fakeStore }

func (r fakeSessionRepo) Create(_ context.Context, userName string) error {
	if err := r.s.record("sessions.create"); err != nil {
		return err
	}
	r.s.sessions[userName] = *domain.NewUserSession(userName)
	return nil
}

func (r fakeSessionRepo) GetByUserName(_ context.Context, userName string) (*domain.UserSession, error) {
	if err := r.s.record("sessions.get"); err != nil {
		return nil, err
	}
	session, ok := r.s.sessions[userName]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &session, nil
}

func (r fakeSessionRepo) update(op, userName string, mutate func(*domain.UserSession)) (*domain.UserSession, error) {
	if err := r.s.record(op); err != nil {
		return nil, err
	}
	session, ok := r.s.sessions[userName]
	if !ok {
		return nil, repository.ErrNotFound
	}
	mutate(&session)
	r.s.sessions[userName] = session
	return &session, nil
}

func (r fakeSessionRepo) UpdateVideos(_ context.Context, userName string, videos []string) (*domain.UserSession, error) {
	return r.update("sessions.videos", userName, func(s *domain.UserSession) { s.Videos = videos })
}

func (r fakeSessionRepo) UpdateFinished(_ context.Context, userName string, finished bool) (*domain.UserSession, error) {
	return r.update("sessions.finished", userName, func(s *domain.UserSession) { s.Finished = finished })
}

func (r fakeSessionRepo) UpdateCheck(_ context.Context, userName string, value bool, index int) (*domain.UserSession, error) {
	return r.update("sessions.check", userName, func(s *domain.UserSession) {
		s.Checks = setCheck(s.Checks, index, value)
	})
}

// setCheck is the in-memory equivalent of the UpdateCheck pipeline: the gap
// up to index is filled with false.
func setCheck(checks []bool, index int, value bool) []bool {
	size := len(checks)
	if index >= size {
		size = index + 1
	}
	out := make([]bool, size)
	copy(out, checks)
	out[index] = value
	return out
}

func (r fakeSessionRepo) ResetChecks(_ context.Context, userName string) (*domain.UserSession, error) {
	return r.update("sessions.reset", userName, func(s *domain.UserSession) { s.Checks = []bool{} })
}

func (r fakeSessionRepo) IncrementCompleteSessions(_ context.Context, userName string) (*domain.UserSession, error) {
	return r.update("sessions.complete", userName, func(s *domain.UserSession) { s.CompleteSessions++ })
}

func (r fakeSessionRepo) IncrementOpenedSessions(_ context.Context, userName string) (*domain.UserSession, error) {
	return r.update("sessions.opened", userName, func(s *domain.UserSession) { s.OpenedSessions++ })
}

func (r fakeSessionRepo) Delete(_ context.Context, userName string) (*repository.DeleteResult, error) {
	if err := r.s.record("sessions.delete"); err != nil {
		return nil, err
	}
	if _, ok := r.s.sessions[userName]; !ok {
		return &repository.DeleteResult{}, nil
	}
	delete(r.s.sessions, userName)
	return &repository.DeleteResult{DeletedCount: 1}, nil
}

// --- videos ---

type fakeVideoRepo struct{ s *fakeStore }

func (r fakeVideoRepo) Create(_ context.Context, video *domain.Video) (*domain.Video, error) {
	if err := r.s.record("videos.create"); err != nil {
		return nil, err
	}
	if _, ok := r.s.videos[video.URL]; ok {
		return nil, repository.ErrDuplicate
	}
	created := *video
	created.LikeCount = 0
	r.s.videos[video.URL] = created
	return &created, nil
}

func (r fakeVideoRepo) InsertMany(_ context.Context, videos []domain.Video) (int, error) {
	if err := r.s.record("videos.insertMany"); err != nil {
		return 0, err
	}
	inserted := 0
	for _, v := range videos {
		if _, ok := r.s.videos[v.URL]; ok {
			continue
		}
		r.s.videos[v.URL] = v
		inserted++
	}
	return inserted, nil
}

func (r fakeVideoRepo) GetByURL(_ context.Context, url string) (*domain.Video, error) {
	if err := r.s.record("videos.get"); err != nil {
		return nil, err
	}
	video, ok := r.s.videos[url]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &video, nil
}

func (r fakeVideoRepo) Delete(_ context.Context, url string) (*domain.Video, error) {
	if err := r.s.record("videos.delete"); err != nil {
		return nil, err
	}
	video, ok := r.s.videos[url]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.s.videos, url)
	return &video, nil
}

func (r fakeVideoRepo) ChangeLikeCount(_ context.Context, url string, action domain.LikeAction) (*domain.Video, error) {
	if err := r.s.record("videos.like"); err != nil {
		return nil, err
	}
	video, ok := r.s.videos[url]
	if !ok {
		return nil, repository.ErrNotFound
	}
	video.LikeCount += int(action)
	r.s.videos[url] = video
	return &video, nil
}

func (r fakeVideoRepo) DecrementLikeCounts(_ context.Context, urls []string) (int64, error) {
	if err := r.s.record("videos.decrement"); err != nil {
		return 0, err
	}
	var matched int64
	for _, url := range urls {
		if video, ok := r.s.videos[url]; ok {
			video.LikeCount--
			r.s.videos[url] = video
			matched++
		}
	}
	return matched, nil
}

func (r fakeVideoRepo) GetUnique(_ context.Context) ([]string, error) {
	if err := r.s.record("videos.unique"); err != nil {
		return nil, err
	}
	urls := []string{}
	for _, difficulty := range domain.DifficultyOrder {
		for _, v := range r.sorted() {
			if v.Difficulty == difficulty {
				urls = append(urls, v.URL)
				break
			}
		}
	}
	return urls, nil
}

func (r fakeVideoRepo) sorted() []domain.Video {
	videos := []domain.Video{}
	for _, v := range r.s.videos {
		videos = append(videos, v)
	}
	sort.Slice(videos, func(i, j int) bool { return videos[i].URL < videos[j].URL })
	return videos
}

func (r fakeVideoRepo) byBodyPart(bodyPart string) []domain.Video {
	videos := []domain.Video{}
	for _, v := range r.sorted() {
		if v.BodyPart == bodyPart {
			videos = append(videos, v)
		}
	}
	return videos
}

func (r fakeVideoRepo) ListByBodyPart(_ context.Context, bodyPart string) ([]domain.Video, error) {
	if err := r.s.record("videos.list"); err != nil {
		return nil, err
	}
	return r.byBodyPart(bodyPart), nil
}

func (r fakeVideoRepo) SortedByTitle(_ context.Context, bodyPart string, ascending bool) ([]domain.Video, error) {
	if err := r.s.record("videos.byTitle"); err != nil {
		return nil, err
	}
	videos := r.byBodyPart(bodyPart)
	sort.SliceStable(videos, func(i, j int) bool {
		if ascending {
			return videos[i].Title < videos[j].Title
		}
		return videos[i].Title > videos[j].Title
	})
	return videos, nil
}

func (r fakeVideoRepo) SortedByLikeCount(_ context.Context, bodyPart string, highestFirst bool) ([]domain.Video, error) {
	if err := r.s.record("videos.byLikes"); err != nil {
		return nil, err
	}
	videos := r.byBodyPart(bodyPart)
	sort.SliceStable(videos, func(i, j int) bool {
		if highestFirst {
			return videos[i].LikeCount > videos[j].LikeCount
		}
		return videos[i].LikeCount < videos[j].LikeCount
	})
	return videos, nil
}

func (r fakeVideoRepo) SortedByDifficulty(_ context.Context, bodyPart string, beginnerFirst bool) ([]domain.Video, error) {
	if err := r.s.record("videos.byDifficulty"); err != nil {
		return nil, err
	}
	ranking := domain.DifficultyRanking(beginnerFirst)
	rank := func(d string) int {
		for i, r := range ranking {
			if r == d {
				return i
			}
		}
		return -1
	}
	videos := r.byBodyPart(bodyPart)
	sort.SliceStable(videos, func(i, j int) bool { return rank(videos[i].Difficulty) < rank(videos[j].Difficulty) })
	return videos, nil
}

// --- likes ---

type fakeLikeRepo struct{ s *fakeStore }

func (r fakeLikeRepo) Add(_ context.Context, userName, url string) error {
	if err := r.s.record("likes.add"); err != nil {
		return err
	}
	for _, u := range r.s.likes[userName] {
		if u == url {
			return repository.ErrDuplicate
		}
	}
	r.s.likes[userName] = append(r.s.likes[userName], url)
	return nil
}

func (r fakeLikeRepo) Remove(_ context.Context, userName, url string) (*repository.DeleteResult, error) {
	if err := r.s.record("likes.remove"); err != nil {
		return nil, err
	}
	urls := r.s.likes[userName]
	for i, u := range urls {
		if u == url {
			r.s.likes[userName] = append(urls[:i:i], urls[i+1:]...)
			return &repository.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &repository.DeleteResult{}, nil
}

func (r fakeLikeRepo) GetURLsByUser(_ context.Context, userName string) ([]string, error) {
	if err := r.s.record("likes.urls"); err != nil {
		return nil, err
	}
	return append([]string{}, r.s.likes[userName]...), nil
}

func (r fakeLikeRepo) DeleteByUser(_ context.Context, userName string) (*repository.DeleteResult, error) {
	if err := r.s.record("likes.deleteByUser"); err != nil {
		return nil, err
	}
	n := len(r.s.likes[userName])
	delete(r.s.likes, userName)
	return &repository.DeleteResult{DeletedCount: int64(n)}, nil
}

// --- quotes ---

type fakeQuoteRepo struct{ s *fakeStore }

func (r fakeQuoteRepo) GetRandom(_ context.Context) (domain.Quote, error) {
	if err := r.s.record("quotes.random"); err != nil {
		return nil, err
	}
	if len(r.s.quotes) == 0 {
		return nil, repository.ErrNotFound
	}
	return r.s.quotes[0], nil
}

func (r fakeQuoteRepo) InsertMany(_ context.Context, quotes []domain.Quote) (int, error) {
	if err := r.s.record("quotes.insertMany"); err != nil {
		return 0, err
	}
	r.s.quotes = append(r.s.quotes, quotes...)
	return len(quotes), nil
}
