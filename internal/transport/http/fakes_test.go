package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
)

type progressKey struct {
	userID uuid.UUID
	ID     uuid.UUID
}

// fakeStore backs the whole router in-memory with the same semantics
// the gorm repositories have against postgres.
type fakeStore struct {
	clock time.Time

	users          map[uuid.UUID]*domain.User
	courses        map[uuid.UUID]*domain.Course
	lessons        map[uuid.UUID]*domain.Lesson
	courseProgress map[progressKey]*domain.UserCourseProgress
	lessonProgress map[progressKey]*domain.UserLessonProgress
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clock:          time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		users:          map[uuid.UUID]*domain.User{},
		courses:        map[uuid.UUID]*domain.Course{},
		lessons:        map[uuid.UUID]*domain.Lesson{},
		courseProgress: map[progressKey]*domain.UserCourseProgress{},
		lessonProgress: map[progressKey]*domain.UserLessonProgress{},
	}
}

func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

// --- usecase.UserStore ---

func (f *fakeStore) Create(_ context.Context, user *domain.User) error {
	for _, u := range f.users {
		if u.Phone == user.Phone {
			return domain.ErrUserAlreadyExists
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = f.tick()
	f.users[user.ID] = user
	return nil
}

func (f *fakeStore) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeStore) TouchLastLogin(_ context.Context, id uuid.UUID) error {
	if u, ok := f.users[id]; ok {
		now := f.tick()
		u.LastLogin = &now
	}
	return nil
}

// --- usecase.CourseStore ---

func (f *fakeStore) lessonCount(courseID uuid.UUID) int64 {
	var n int64
	for _, l := range f.lessons {
		if l.CourseID == courseID {
			n++
		}
	}
	return n
}

func (f *fakeStore) summaries(publishedOnly bool) []domain.CourseSummary {
	courses := make([]*domain.Course, 0, len(f.courses))
	for _, c := range f.courses {
		if publishedOnly && !c.IsPublished {
			continue
		}
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].CreatedAt.After(courses[j].CreatedAt)
	})

	summaries := make([]domain.CourseSummary, 0, len(courses))
	for _, c := range courses {
		summaries = append(summaries, domain.CourseSummary{
			ID:            c.ID,
			Title:         c.Title,
			Description:   c.Description,
			CoverImage:    c.CoverImage,
			DurationHours: c.DurationHours,
			IsPublished:   c.IsPublished,
			LessonsCount:  f.lessonCount(c.ID),
		})
	}
	return summaries
}

func (f *fakeStore) ListPublished(_ context.Context) ([]domain.CourseSummary, error) {
	return f.summaries(true), nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]domain.CourseSummary, error) {
	return f.summaries(false), nil
}

func (f *fakeStore) GetDetail(_ context.Context, id uuid.UUID) (*domain.CourseDetail, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}

	lessons := []domain.Lesson{}
	for _, l := range f.lessons {
		if l.CourseID == id {
			lessons = append(lessons, *l)
		}
	}
	sort.Slice(lessons, func(i, j int) bool {
		if lessons[i].OrderIndex != lessons[j].OrderIndex {
			return lessons[i].OrderIndex < lessons[j].OrderIndex
		}
		return lessons[i].CreatedAt.Before(lessons[j].CreatedAt)
	})

	detail := &domain.CourseDetail{Course: *course, Lessons: lessons}
	if course.CreatedBy != nil {
		if creator, ok := f.users[*course.CreatedBy]; ok {
			detail.CreatorName = creator.FullName
		}
	}
	return detail, nil
}

func (f *fakeStore) CreateCourse(_ context.Context, course *domain.Course) error {
	course.ID = uuid.New()
	course.CreatedAt = f.tick()
	course.UpdatedAt = course.CreatedAt
	f.courses[course.ID] = course
	return nil
}

func (f *fakeStore) UpdateCourse(_ context.Context, id uuid.UUID, changes map[string]interface{}) (*domain.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	for key, value := range changes {
		switch key {
		case "title":
			course.Title = value.(string)
		case "description":
			course.Description = value.(string)
		case "cover_image":
			course.CoverImage = value.(string)
		case "duration_hours":
			course.DurationHours = value.(int)
		case "is_published":
			course.IsPublished = value.(bool)
		}
	}
	course.UpdatedAt = f.tick()
	clone := *course
	return &clone, nil
}

// --- usecase.LessonStore ---

func (f *fakeStore) CreateLesson(_ context.Context, lesson *domain.Lesson) error {
	lesson.ID = uuid.New()
	lesson.CreatedAt = f.tick()
	f.lessons[lesson.ID] = lesson
	return nil
}

func (f *fakeStore) UpdateLesson(_ context.Context, id uuid.UUID, changes map[string]interface{}) (*domain.Lesson, error) {
	lesson, ok := f.lessons[id]
	if !ok {
		return nil, domain.ErrLessonNotFound
	}
	for key, value := range changes {
		switch key {
		case "title":
			lesson.Title = value.(string)
		case "content_type":
			lesson.ContentType = value.(string)
		case "content_data":
			lesson.ContentData = value.(datatypes.JSON)
		case "order_index":
			lesson.OrderIndex = value.(int)
		case "duration_minutes":
			lesson.DurationMinutes = value.(int)
		}
	}
	clone := *lesson
	return &clone, nil
}

// --- usecase.ProgressStore ---

func (f *fakeStore) GetForCourse(_ context.Context, userID, courseID uuid.UUID) (*domain.CourseProgress, error) {
	row, ok := f.courseProgress[progressKey{userID, courseID}]
	if !ok {
		return nil, nil
	}
	course := f.courses[courseID]
	return &domain.CourseProgress{
		ProgressPercent: row.ProgressPercent,
		StartedAt:       row.StartedAt,
		CompletedAt:     row.CompletedAt,
		CourseTitle:     course.Title,
		CoverImage:      course.CoverImage,
	}, nil
}

func (f *fakeStore) ListForUser(_ context.Context, userID uuid.UUID) ([]domain.ProgressEntry, error) {
	entries := []domain.ProgressEntry{}
	for key, row := range f.courseProgress {
		if key.userID != userID {
			continue
		}
		course := f.courses[key.ID]
		entries = append(entries, domain.ProgressEntry{
			CourseID:        key.ID,
			Title:           course.Title,
			CoverImage:      course.CoverImage,
			ProgressPercent: row.ProgressPercent,
			StartedAt:       row.StartedAt,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].StartedAt.After(entries[j].StartedAt)
	})
	return entries, nil
}

func (f *fakeStore) Submit(_ context.Context, userID, courseID, lessonID uuid.UUID, completed bool) (int, error) {
	courseKey := progressKey{userID, courseID}
	row, ok := f.courseProgress[courseKey]
	if !ok {
		row = &domain.UserCourseProgress{
			UserID:    userID,
			CourseID:  courseID,
			StartedAt: f.tick(),
		}
		f.courseProgress[courseKey] = row
	}

	if completed {
		now := f.tick()
		f.lessonProgress[progressKey{userID, lessonID}] = &domain.UserLessonProgress{
			UserID:      userID,
			LessonID:    lessonID,
			Completed:   true,
			CompletedAt: &now,
		}
	}

	total := f.lessonCount(courseID)
	var done int64
	for key, lp := range f.lessonProgress {
		if key.userID != userID || !lp.Completed {
			continue
		}
		if lesson, ok := f.lessons[key.ID]; ok && lesson.CourseID == courseID {
			done++
		}
	}

	percent := domain.ProgressPercent(done, total)
	row.ProgressPercent = percent
	if percent >= 100 && row.CompletedAt == nil {
		now := f.tick()
		row.CompletedAt = &now
	}
	return percent, nil
}

// --- seed helpers ---

func (f *fakeStore) seedUser(t *testing.T, role string) *domain.User {
	t.Helper()
	user := &domain.User{
		Phone:    "+7" + uuid.New().String()[:10],
		FullName: "Test " + role,
		Role:     role,
	}
	if err := f.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (f *fakeStore) seedCourse(t *testing.T, title string, published bool, createdBy *uuid.UUID) *domain.Course {
	t.Helper()
	course := &domain.Course{
		Title:       title,
		IsPublished: published,
		CreatedBy:   createdBy,
	}
	if err := f.CreateCourse(context.Background(), course); err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return course
}

func (f *fakeStore) seedLesson(t *testing.T, courseID uuid.UUID, title string, orderIndex int) *domain.Lesson {
	t.Helper()
	lesson := &domain.Lesson{
		CourseID:    courseID,
		Title:       title,
		ContentType: "text",
		ContentData: datatypes.JSON([]byte(`{}`)),
		OrderIndex:  orderIndex,
	}
	if err := f.CreateLesson(context.Background(), lesson); err != nil {
		t.Fatalf("seed lesson: %v", err)
	}
	return lesson
}

// courseStoreAdapter renames fakeStore methods onto the store
// interfaces where names collide with the user store.
type courseStoreAdapter struct{ f *fakeStore }

func (a courseStoreAdapter) ListPublished(ctx context.Context) ([]domain.CourseSummary, error) {
	return a.f.ListPublished(ctx)
}
func (a courseStoreAdapter) ListAll(ctx context.Context) ([]domain.CourseSummary, error) {
	return a.f.ListAll(ctx)
}
func (a courseStoreAdapter) GetDetail(ctx context.Context, id uuid.UUID) (*domain.CourseDetail, error) {
	return a.f.GetDetail(ctx, id)
}
func (a courseStoreAdapter) Create(ctx context.Context, course *domain.Course) error {
	return a.f.CreateCourse(ctx, course)
}
func (a courseStoreAdapter) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*domain.Course, error) {
	return a.f.UpdateCourse(ctx, id, changes)
}

type lessonStoreAdapter struct{ f *fakeStore }

func (a lessonStoreAdapter) Create(ctx context.Context, lesson *domain.Lesson) error {
	return a.f.CreateLesson(ctx, lesson)
}
func (a lessonStoreAdapter) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*domain.Lesson, error) {
	return a.f.UpdateLesson(ctx, id, changes)
}

// --- router + request helpers ---

func newTestServer(t *testing.T) (*gin.Engine, *fakeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := newFakeStore()

	authUseCase := usecase.NewAuthUseCase(f)
	catalogUseCase := usecase.NewCatalogUseCase(courseStoreAdapter{f})
	progressUseCase := usecase.NewProgressUseCase(f)
	adminUseCase := usecase.NewAdminUseCase(courseStoreAdapter{f}, lessonStoreAdapter{f})
	guard := usecase.NewGuard(f)

	router := NewRouter(
		zerolog.Nop(),
		NewAuthHandler(authUseCase),
		NewCourseHandler(catalogUseCase),
		NewProgressHandler(progressUseCase),
		NewAdminCourseHandler(adminUseCase),
		NewAdminLessonHandler(adminUseCase),
		guard,
	)
	return router, f
}

func perform(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func asAdmin(id uuid.UUID) map[string]string {
	return map[string]string{"X-User-Id": id.String()}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}
