package project_test

import (
	"context"
	"testing"

	"github.com/ganot/punchcard/internal/domain/project"
	"github.com/ganot/punchcard/internal/repository"
	"github.com/ganot/punchcard/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.MatchedBy(func(p *project.Project) bool {
		return p.Title == "Deep Work" && p.TableName == "project_Deep_Work"
	})).Return(nil)

	svc := project.NewService(repo, nil)
	proj, err := svc.Create(ctx, project.CreateRequest{Title: "  Deep Work  ", Details: "focus blocks"})
	require.NoError(t, err)
	require.Equal(t, "Deep Work", proj.Title)
	require.Equal(t, "project_Deep_Work", proj.TableName)
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	svc := project.NewService(repo, nil)

	_, err := svc.Create(ctx, project.CreateRequest{Title: "   "})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_CreateDuplicate(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicate)

	svc := project.NewService(repo, nil)
	_, err := svc.Create(ctx, project.CreateRequest{Title: "Alpha"})
	require.ErrorIs(t, err, project.ErrDuplicateTitle)
}

func TestProjectService_GetByTitleMissing(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("GetByTitle", ctx, "nope").Return((*project.Project)(nil), repository.ErrNotFound)

	svc := project.NewService(repo, nil)
	_, err := svc.GetByTitle(ctx, "nope")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestTableName(t *testing.T) {
	cases := map[string]string{
		"Alpha":          "project_Alpha",
		"Deep Work":      "project_Deep_Work",
		"a b c":          "project_a_b_c",
		"Alpha!":         "project_Alpha",
		"Alpha?":         "project_Alpha",
		"hello-world 42": "project_helloworld_42",
	}
	for title, want := range cases {
		require.Equal(t, want, project.TableName(title), "title %q", title)
	}
}
