package repository_test

import (
	"context"
	"iter"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/godatakit/godata"
	"github.com/godatakit/godata/constraint"
	"github.com/godatakit/godata/metamodel"
	"github.com/godatakit/godata/page"
	"github.com/godatakit/godata/repository"
	"github.com/godatakit/godata/restrict"
)

type employee struct {
	ID       uuid.UUID `data:",id"`
	LastName string
	Salary   float64
}

var empSalary = metamodel.NewComparable[employee, float64]("salary")

// mockRepository is a hand-wired provider double.
type mockRepository struct {
	mock.Mock
}

var _ repository.CrudRepository[employee, uuid.UUID] = (*mockRepository)(nil)

func (m *mockRepository) Save(ctx context.Context, e employee) (employee, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(employee), args.Error(1)
}

func (m *mockRepository) SaveAll(ctx context.Context, es []employee) ([]employee, error) {
	args := m.Called(ctx, es)
	return args.Get(0).([]employee), args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee), args.Error(1)
}

func (m *mockRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) FindAll(ctx context.Context, opts ...repository.FindOption[employee]) iter.Seq2[employee, error] {
	args := m.Called(ctx, opts)
	return args.Get(0).(iter.Seq2[employee, error])
}

func (m *mockRepository) Find(ctx context.Context, r restrict.Restriction[employee], opts ...repository.FindOption[employee]) iter.Seq2[employee, error] {
	args := m.Called(ctx, r, opts)
	return args.Get(0).(iter.Seq2[employee, error])
}

func (m *mockRepository) FindPage(ctx context.Context, r restrict.Restriction[employee], req page.PageRequest, order godata.Order[employee]) (page.Page[employee], error) {
	args := m.Called(ctx, r, req, order)
	p, _ := args.Get(0).(page.Page[employee])
	return p, args.Error(1)
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) CountWhere(ctx context.Context, r restrict.Restriction[employee]) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, e employee) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) DeleteWhere(ctx context.Context, r restrict.Restriction[employee]) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) Insert(ctx context.Context, e employee) (employee, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(employee), args.Error(1)
}

func (m *mockRepository) InsertAll(ctx context.Context, es []employee) ([]employee, error) {
	args := m.Called(ctx, es)
	return args.Get(0).([]employee), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, e employee) (employee, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(employee), args.Error(1)
}

func (m *mockRepository) UpdateAll(ctx context.Context, es []employee) ([]employee, error) {
	args := m.Called(ctx, es)
	return args.Get(0).([]employee), args.Error(1)
}

func seqOf(es ...employee) iter.Seq2[employee, error] {
	return func(yield func(employee, error) bool) {
		for _, e := range es {
			if !yield(e, nil) {
				return
			}
		}
	}
}

type RepositoryTestSuite struct {
	suite.Suite
}

func (s *RepositoryTestSuite) TestFindOptions() {
	r := empSalary.GreaterThan(1000.0)
	o := godata.OrderBy(godata.Desc[employee]("salary"))
	l := godata.LimitOf(10)
	pr := page.OfSize(25)

	var fos repository.FindOptions[employee]
	for _, opt := range []repository.FindOption[employee]{
		repository.WithRestriction[employee](r),
		repository.WithOrder(o),
		repository.WithLimit[employee](l),
		repository.WithPageRequest[employee](pr),
	} {
		opt(&fos)
	}
	s.Equal(repository.FindOptions[employee]{
		Restriction: r,
		Order:       o,
		Limit:       &l,
		Page:        &pr,
	}, fos)
}

func (s *RepositoryTestSuite) TestApplyFindOptionsDefaults() {
	fos := repository.ApplyFindOptions[employee]()
	s.Equal(restrict.Restriction[employee](restrict.Unrestricted[employee]{}), fos.Restriction)
	s.True(fos.Order.IsEmpty())
	s.Nil(fos.Limit)
	s.Nil(fos.Page)
}

func (s *RepositoryTestSuite) TestApplyFindOptionsFolds() {
	r := empSalary.LessThan(500.0)
	fos := repository.ApplyFindOptions(
		repository.WithRestriction[employee](r),
		repository.WithLimit[employee](godata.LimitOf(3)),
	)
	s.Equal(restrict.Restriction[employee](r), fos.Restriction)
	s.Require().NotNil(fos.Limit)
	s.Equal(3, fos.Limit.MaxResults())
}

func (s *RepositoryTestSuite) TestProviderContract() {
	ctx := context.Background()
	id := uuid.New()
	duke := employee{ID: id, LastName: "Duke", Salary: 1200}

	repo := new(mockRepository)
	repo.On("FindByID", ctx, id).Return(duke, nil)
	repo.On("CountWhere", ctx, mock.Anything).Return(int64(1), nil)
	repo.On("Find", ctx, mock.Anything, mock.Anything).Return(seqOf(duke))

	got, err := repo.FindByID(ctx, id)
	s.NoError(err)
	s.Equal(duke, got)

	n, err := repo.CountWhere(ctx, empSalary.GreaterThan(1000.0))
	s.NoError(err)
	s.Equal(int64(1), n)

	var found []employee
	for e, err := range repo.Find(ctx, empSalary.GreaterThan(1000.0)) {
		s.NoError(err)
		found = append(found, e)
	}
	s.Equal([]employee{duke}, found)

	repo.AssertExpectations(s.T())
}

func (s *RepositoryTestSuite) TestProviderReportsSharedErrors() {
	ctx := context.Background()
	id := uuid.New()

	repo := new(mockRepository)
	repo.On("FindByID", ctx, id).Return(employee{}, godata.ErrNotFound)
	repo.On("Insert", ctx, mock.Anything).Return(employee{}, godata.ErrEntityExists)

	_, err := repo.FindByID(ctx, id)
	s.ErrorIs(err, godata.ErrNotFound)

	_, err = repo.Insert(ctx, employee{ID: id})
	s.ErrorIs(err, godata.ErrEntityExists)
}

func (s *RepositoryTestSuite) TestRestrictionsFlowToProviders() {
	ctx := context.Background()
	repo := new(mockRepository)

	r := restrict.All(
		empSalary.GreaterThan(1000.0),
		restrict.NewBasic[employee]("lastName", constraint.EqualTo("Duke")),
	)
	repo.On("DeleteWhere", ctx, r).Return(int64(2), nil)

	n, err := repo.DeleteWhere(ctx, r)
	s.NoError(err)
	s.Equal(int64(2), n)
	repo.AssertExpectations(s.T())
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
