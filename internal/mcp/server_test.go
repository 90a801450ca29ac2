package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bornholm/cocomo/internal/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T, dir string) *mcp.ClientSession {
	t.Helper()

	server, err := NewServer(&ServerOptions{RootDir: dir, Config: model.DefaultConfig()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.Close() })

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func callText(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return err.Error(), true
	}

	var sb strings.Builder
	for _, c := range res.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			sb.WriteString(text.Text)
		}
	}
	return sb.String(), res.IsError
}

func TestServerListsTools(t *testing.T) {
	session := connect(t, t.TempDir())

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := []string{}
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}

	assert.ElementsMatch(t, []string{
		"estimate", "list_attributes",
		"list_projects", "create_project", "get_project", "set_rating",
		"estimate_project", "delete_project",
		"get_config",
	}, names)
}

func TestEstimateTool(t *testing.T) {
	session := connect(t, t.TempDir())

	text, isErr := callText(t, session, "estimate", map[string]any{"sloc": 30000})
	require.False(t, isErr, text)

	assert.Contains(t, text, "Class: organic")
	assert.Contains(t, text, "EFFORT_APPLIED = 113.79")
	assert.Contains(t, text, "DEVELOPMENT_TIME = 15.11")
	assert.Contains(t, text, "PEOPLE_REQUIRED = 7.53")
}

func TestEstimateToolWithClassAndRatings(t *testing.T) {
	session := connect(t, t.TempDir())

	text, isErr := callText(t, session, "estimate", map[string]any{
		"sloc":    30000,
		"class":   "E",
		"ratings": map[string]any{"rely": "H"},
	})
	require.False(t, isErr, text)

	assert.Contains(t, text, "Class: embedded")
	assert.Contains(t, text, "EAF: 1.15")
}

func TestEstimateToolErrors(t *testing.T) {
	session := connect(t, t.TempDir())

	_, isErr := callText(t, session, "estimate", map[string]any{"sloc": 0})
	assert.True(t, isErr)

	_, isErr = callText(t, session, "estimate", map[string]any{"sloc": 1000, "class": "X"})
	assert.True(t, isErr)
}

func TestListAttributesTool(t *testing.T) {
	session := connect(t, t.TempDir())

	text, isErr := callText(t, session, "list_attributes", map[string]any{})
	require.False(t, isErr, text)

	assert.Contains(t, text, "rely")
	assert.Contains(t, text, "sced")
	assert.Contains(t, text, "semi-detached: a=3.00 b=1.12 c=2.50 d=0.35")
}

func TestProjectLifecycle(t *testing.T) {
	dir := t.TempDir()
	session := connect(t, dir)
	path := "api.cocomo-project.yml"

	text, isErr := callText(t, session, "create_project", map[string]any{
		"path":  path,
		"label": "API",
		"sloc":  30000,
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Created project 'API'")
	assert.FileExists(t, filepath.Join(dir, path))

	text, isErr = callText(t, session, "set_rating", map[string]any{
		"path":      path,
		"attribute": "rely",
		"rating":    "high",
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, "rely set to high")

	_, isErr = callText(t, session, "set_rating", map[string]any{
		"path":      path,
		"attribute": "unknown",
		"rating":    "H",
	})
	assert.True(t, isErr)

	text, isErr = callText(t, session, "get_project", map[string]any{"path": path})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Project: API")
	assert.Contains(t, text, "Size: 30000 SLOC")
	assert.Contains(t, text, "rely: high")
	assert.Contains(t, text, "cplx: nominal")

	text, isErr = callText(t, session, "estimate_project", map[string]any{"path": path})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Project: API")
	assert.Contains(t, text, "EAF: 1.15")

	text, isErr = callText(t, session, "list_projects", map[string]any{})
	require.False(t, isErr, text)
	assert.Contains(t, text, path)

	text, isErr = callText(t, session, "delete_project", map[string]any{"path": path})
	require.False(t, isErr, text)
	assert.NoFileExists(t, filepath.Join(dir, path))

	text, isErr = callText(t, session, "list_projects", map[string]any{})
	require.False(t, isErr, text)
	assert.Equal(t, "No project files found.", text)
}

func TestGetConfigTool(t *testing.T) {
	session := connect(t, t.TempDir())

	text, isErr := callText(t, session, "get_config", map[string]any{})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Default Class: organic")
	assert.Contains(t, text, "Hours Per Month: 152")
}

func TestChrootedStoreStaysInRoot(t *testing.T) {
	dir := t.TempDir()
	s, err := NewChrootedStore(dir)
	require.NoError(t, err)
	defer s.Close()

	project := model.NewProject("inside")
	require.NoError(t, s.SaveProject("sub/inside.cocomo-project.yml", project))

	loaded, err := s.LoadProject("sub/inside.cocomo-project.yml")
	require.NoError(t, err)
	assert.Equal(t, project.ID, loaded.ID)

	files, err := s.ListProjects("sub")
	require.NoError(t, err)
	assert.Equal(t, []string{"inside.cocomo-project.yml"}, files)

	err = s.SaveProject("../escape.cocomo-project.yml", project)
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(filepath.Dir(dir), "escape.cocomo-project.yml"))
	assert.True(t, os.IsNotExist(statErr))

	_, err = s.LoadProject("../etc/passwd")
	assert.Error(t, err)
}

func TestChrootedStoreRejectsInvalidProject(t *testing.T) {
	dir := t.TempDir()
	s, err := NewChrootedStore(dir)
	require.NoError(t, err)
	defer s.Close()

	project := model.NewProject("negative")
	project.SetSLOC(-1)

	assert.Error(t, s.SaveProject("neg.cocomo-project.yml", project))
	assert.NoFileExists(t, filepath.Join(dir, "neg.cocomo-project.yml"))
}

func TestCreateProjectToolRejectsNegativeSLOC(t *testing.T) {
	dir := t.TempDir()
	session := connect(t, dir)

	_, isErr := callText(t, session, "create_project", map[string]any{
		"path":  "neg.cocomo-project.yml",
		"label": "Negative",
		"sloc":  -5,
	})
	assert.True(t, isErr)
	assert.NoFileExists(t, filepath.Join(dir, "neg.cocomo-project.yml"))
}
