// Package repotest provides an in-memory implementation of the repository
// interfaces that follows the constraints of the Postgres schema.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/skillmap/skillmap/internal/app/models"
	"github.com/skillmap/skillmap/internal/app/repositories"
	"github.com/skillmap/skillmap/internal/pkg/apperrors"
)

type mappingKey struct {
	courseID int64
	skillID  int64
}

// Store holds every table in memory
type Store struct {
	mu sync.Mutex

	nextID int64

	students      map[int64]*models.Student
	facultyAdmins map[int64]*models.FacultyAdmin
	majors        map[int64]*models.Major
	courses       map[int64]*models.Course
	skills        map[int64]*models.Skill
	mappings      map[mappingKey]struct{}
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		students:      make(map[int64]*models.Student),
		facultyAdmins: make(map[int64]*models.FacultyAdmin),
		majors:        make(map[int64]*models.Major),
		courses:       make(map[int64]*models.Course),
		skills:        make(map[int64]*models.Skill),
		mappings:      make(map[mappingKey]struct{}),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// Users returns the account repository view
func (s *Store) Users() repositories.IUserRepository { return (*userRepo)(s) }

// Courses returns the course repository view
func (s *Store) Courses() repositories.ICourseRepository { return (*courseRepo)(s) }

// Majors returns the major repository view
func (s *Store) Majors() repositories.IMajorRepository { return (*majorRepo)(s) }

// Skills returns the skill repository view
func (s *Store) Skills() repositories.ISkillRepository { return (*skillRepo)(s) }

// Mappings returns the mapping repository view
func (s *Store) Mappings() repositories.IMappingRepository { return (*mappingRepo)(s) }

// Repositories returns every view as a repositories container
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		UserRepository:    s.Users(),
		CourseRepository:  s.Courses(),
		MajorRepository:   s.Majors(),
		SkillRepository:   s.Skills(),
		MappingRepository: s.Mappings(),
	}
}

// AddCourse inserts a course and returns its ID
func (s *Store) AddCourse(code, major string) int64 {
	c := &models.Course{Code: code, Major: major}
	if err := s.Courses().Create(context.Background(), c); err != nil {
		panic(err)
	}
	return c.ID
}

// AddSkill inserts a free-text skill and returns its ID
func (s *Store) AddSkill(description string) int64 {
	sk := &models.Skill{SkillName: models.SkillPlaceholderName, Description: &description}
	if err := s.Skills().Create(context.Background(), sk); err != nil {
		panic(err)
	}
	return sk.ID
}

// AddCompetency inserts a competency and returns its ID
func (s *Store) AddCompetency(name string) int64 {
	sk := &models.Skill{SkillName: name, Type: true}
	if err := s.Skills().Create(context.Background(), sk); err != nil {
		panic(err)
	}
	return sk.ID
}

// MappingCount returns the number of mapping rows referencing skillID
func (s *Store) MappingCount(skillID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.mappings {
		if k.skillID == skillID {
			n++
		}
	}
	return n
}

// SkillCount returns the number of rows in the skills table
func (s *Store) SkillCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.skills)
}

type userRepo Store

func (r *userRepo) CreateStudent(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.students {
		if existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	student.ID = (*Store)(r).id()
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt
	stored := *student
	r.students[student.ID] = &stored
	return nil
}

func (r *userRepo) CreateFacultyAdmin(_ context.Context, account *models.FacultyAdmin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.facultyAdmins {
		if existing.Email == account.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	account.ID = (*Store)(r).id()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	stored := *account
	r.facultyAdmins[account.ID] = &stored
	return nil
}

func (r *userRepo) StudentEmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *userRepo) FacultyAdminEmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.facultyAdmins {
		if f.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *userRepo) GetStudentByEmail(_ context.Context, email string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *userRepo) GetFacultyAdminByEmail(_ context.Context, email string) (*models.FacultyAdmin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.facultyAdmins {
		if f.Email == email {
			cp := *f
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *userRepo) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *userRepo) GetFacultyAdminByID(_ context.Context, id int64) (*models.FacultyAdmin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.facultyAdmins[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *userRepo) UpdateStudentProfile(_ context.Context, id int64, update models.ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	s.FirstName = update.FirstName
	s.LastName = update.LastName
	if update.Major != nil {
		major := *update.Major
		s.Major = &major
	}
	if update.PasswordHash != nil {
		s.PasswordHash = *update.PasswordHash
	}
	s.UpdatedAt = time.Now()
	return nil
}

func (r *userRepo) UpdateFacultyAdminProfile(_ context.Context, id int64, update models.ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.facultyAdmins[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	f.FirstName = update.FirstName
	f.LastName = update.LastName
	if update.PasswordHash != nil {
		f.PasswordHash = *update.PasswordHash
	}
	f.UpdatedAt = time.Now()
	return nil
}

type courseRepo Store

func (r *courseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *courseRepo) List(_ context.Context, major string) ([]*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Course{}
	for _, c := range r.courses {
		if major == "" || c.Major == major {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *courseRepo) GetByCodes(ctx context.Context, codes []string) ([]*models.Course, error) {
	all, _ := r.List(ctx, "")
	wanted := make(map[string]bool, len(codes))
	for _, c := range codes {
		wanted[c] = true
	}
	out := []*models.Course{}
	for _, c := range all {
		if wanted[c.Code] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *courseRepo) Create(_ context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courses {
		if c.Code == course.Code {
			return apperrors.NewConflictError("Course " + course.Code + " already exists")
		}
	}
	course.ID = (*Store)(r).id()
	cp := *course
	r.courses[course.ID] = &cp
	return nil
}

type majorRepo Store

func (r *majorRepo) List(_ context.Context) ([]*models.Major, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Major{}
	for _, m := range r.majors {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *majorRepo) Ensure(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.majors {
		if m.Name == name {
			return nil
		}
	}
	id := (*Store)(r).id()
	r.majors[id] = &models.Major{ID: id, Name: name}
	return nil
}

type skillRepo Store

func (r *skillRepo) List(_ context.Context) ([]*models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (*Store)(r).sortedSkills(func(*models.Skill) bool { return true }), nil
}

func (r *skillRepo) GetByID(_ context.Context, id int64) (*models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sk, ok := r.skills[id]
	if !ok {
		return nil, apperrors.ErrSkillNotFound
	}
	return copySkill(sk), nil
}

func (r *skillRepo) FindSkillByDescription(_ context.Context, description string) (*models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matches := (*Store)(r).sortedSkills(func(sk *models.Skill) bool {
		return !sk.Type && sk.Description != nil && strings.ToLower(*sk.Description) == strings.ToLower(description)
	})
	if len(matches) == 0 {
		return nil, apperrors.ErrSkillNotFound
	}
	return matches[0], nil
}

func (r *skillRepo) Create(_ context.Context, skill *models.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !skill.Type && skill.Description != nil {
		for _, sk := range r.skills {
			if !sk.Type && sk.Description != nil && strings.EqualFold(*sk.Description, *skill.Description) {
				return apperrors.ErrSkillAlreadyExists
			}
		}
	}
	skill.ID = (*Store)(r).id()
	r.skills[skill.ID] = copySkill(skill)
	return nil
}

type mappingRepo Store

func (r *mappingRepo) GetByCourse(_ context.Context, courseID int64) ([]*models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (*Store)(r).sortedSkills(func(sk *models.Skill) bool {
		_, ok := r.mappings[mappingKey{courseID, sk.ID}]
		return ok
	}), nil
}

func (r *mappingRepo) GetByCourses(ctx context.Context, courseIDs []int64) ([]*models.MappedSkill, error) {
	ids := append([]int64(nil), courseIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := []*models.MappedSkill{}
	for _, id := range ids {
		skills, _ := r.GetByCourse(ctx, id)
		for _, sk := range skills {
			out = append(out, &models.MappedSkill{CourseID: id, Skill: *sk})
		}
	}
	return out, nil
}

func (r *mappingRepo) Replace(_ context.Context, courseID int64, skillIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[courseID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for _, id := range skillIDs {
		if _, ok := r.skills[id]; !ok {
			return apperrors.ErrSkillNotFound
		}
	}
	for k := range r.mappings {
		if k.courseID == courseID {
			delete(r.mappings, k)
		}
	}
	for _, id := range skillIDs {
		r.mappings[mappingKey{courseID, id}] = struct{}{}
	}
	return nil
}

func (r *mappingRepo) DeleteSkillEverywhere(_ context.Context, skillID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[skillID]; !ok {
		return 0, apperrors.ErrSkillNotFound
	}
	var removed int64
	for k := range r.mappings {
		if k.skillID == skillID {
			delete(r.mappings, k)
			removed++
		}
	}
	delete(r.skills, skillID)
	return removed, nil
}

// sortedSkills returns copies of the matching skills ordered by ID. Callers hold mu.
func (s *Store) sortedSkills(match func(*models.Skill) bool) []*models.Skill {
	out := []*models.Skill{}
	for _, sk := range s.skills {
		if match(sk) {
			out = append(out, copySkill(sk))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func copySkill(sk *models.Skill) *models.Skill {
	cp := *sk
	if sk.Description != nil {
		d := *sk.Description
		cp.Description = &d
	}
	return &cp
}
