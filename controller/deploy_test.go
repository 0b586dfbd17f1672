package controller

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/genieiq/cli/entity"
	"github.com/genieiq/cli/errors"
)

type fakeGateway struct {
	app       *entity.App
	appErr    error
	deployErr error

	deployRequests []*entity.DeployRequest
	statuses       []*entity.DeploymentStatus
	statusCalls    int
	opened         string
}

func (f *fakeGateway) GetApp(ctx context.Context, name string) (*entity.App, error) {
	if f.appErr != nil {
		return nil, f.appErr
	}
	return f.app, nil
}

func (f *fakeGateway) CreateDeployment(ctx context.Context, req *entity.DeployRequest) (*entity.AppDeployment, error) {
	f.deployRequests = append(f.deployRequests, req)
	if f.deployErr != nil {
		return nil, f.deployErr
	}
	return &entity.AppDeployment{
		DeploymentId:   "d-2",
		SourceCodePath: req.SourceCodePath,
		Status:         &entity.DeploymentStatus{State: entity.STATUS_RUNNING},
	}, nil
}

func (f *fakeGateway) GetDeployment(ctx context.Context, req *entity.DeploymentStatusRequest) (*entity.AppDeployment, error) {
	idx := f.statusCalls
	f.statusCalls++
	if idx >= len(f.statuses) {
		idx = len(f.statuses) - 1
	}
	return &entity.AppDeployment{
		DeploymentId: req.DeploymentId,
		Status:       f.statuses[idx],
	}, nil
}

func (f *fakeGateway) GetUser(ctx context.Context) (*entity.User, error) {
	return &entity.User{Id: "u-1", UserName: "genie@example.com"}, nil
}

func (f *fakeGateway) OpenInBrowser(url string) error {
	f.opened = url
	return nil
}

func testController(gtwy Gateway) (*Controller, *int) {
	sleeps := 0
	c := &Controller{
		gtwy: gtwy,
		sleep: func(time.Duration) {
			sleeps++
		},
	}
	return c, &sleeps
}

func testDatabaseConfig() *entity.DatabaseConfig {
	return &entity.DatabaseConfig{
		Host:     "h",
		Port:     "5432",
		Database: "genieiq",
		User:     "u",
		Password: "p",
	}
}

func testApp() *entity.App {
	return &entity.App{
		Id:   "app-1",
		Name: "genieiq",
		Url:  "https://genieiq.example.com",
		ActiveDeployment: &entity.AppDeployment{
			DeploymentId:   "d-1",
			SourceCodePath: "/Workspace/Users/u/genieiq",
		},
	}
}

func TestConfigureAndDeploySubmitsOneRequest(t *testing.T) {
	gtwy := &fakeGateway{app: testApp()}
	c, _ := testController(gtwy)

	app, deployment, err := c.ConfigureAndDeploy(context.Background(), &entity.ConfigureRequest{
		AppName:  "genieiq",
		Database: testDatabaseConfig(),
	})
	require.NoError(t, err)
	require.Equal(t, "genieiq", app.Name)
	require.Equal(t, "d-2", deployment.DeploymentId)

	require.Len(t, gtwy.deployRequests, 1)
	req := gtwy.deployRequests[0]
	// The active source path is reused untouched
	require.Equal(t, "/Workspace/Users/u/genieiq", req.SourceCodePath)
	// All and only the constructed pairs, in construction order
	require.Equal(t, entity.Envs{
		{Name: "NODE_ENV", Value: "production"},
		{Name: "PORT", Value: "8080"},
		{Name: "LAKEBASE_HOST", Value: "h"},
		{Name: "LAKEBASE_PORT", Value: "5432"},
		{Name: "LAKEBASE_DATABASE", Value: "genieiq"},
		{Name: "LAKEBASE_USER", Value: "u"},
		{Name: "LAKEBASE_PASSWORD", Value: "p"},
	}, req.Environment)
}

func TestConfigureAndDeployUnknownApp(t *testing.T) {
	gtwy := &fakeGateway{appErr: errors.AppNotFound("nope")}
	c, _ := testController(gtwy)

	_, _, err := c.ConfigureAndDeploy(context.Background(), &entity.ConfigureRequest{
		AppName:  "nope",
		Database: testDatabaseConfig(),
	})
	require.Error(t, err)
	require.True(t, stderrors.Is(err, errors.ErrNotFound))
	// Lookup failure must not lead to a deploy call
	require.Empty(t, gtwy.deployRequests)
}

func TestConfigureAndDeployNoActiveDeployment(t *testing.T) {
	app := testApp()
	app.ActiveDeployment = nil
	gtwy := &fakeGateway{app: app}
	c, _ := testController(gtwy)

	_, _, err := c.ConfigureAndDeploy(context.Background(), &entity.ConfigureRequest{
		AppName:  "genieiq",
		Database: testDatabaseConfig(),
	})
	require.Error(t, err)
	require.True(t, stderrors.Is(err, errors.ErrDeployRejected))
	require.Empty(t, gtwy.deployRequests)
}

func TestConfigureAndDeployIncompleteDatabaseConfig(t *testing.T) {
	gtwy := &fakeGateway{app: testApp()}
	c, _ := testController(gtwy)

	db := testDatabaseConfig()
	db.Password = ""
	_, _, err := c.ConfigureAndDeploy(context.Background(), &entity.ConfigureRequest{
		AppName:  "genieiq",
		Database: db,
	})
	require.Equal(t, errors.DatabaseConfigMissing, err)
	require.Empty(t, gtwy.deployRequests)
}

func TestWaitForDeploymentPollsUntilTerminal(t *testing.T) {
	gtwy := &fakeGateway{statuses: []*entity.DeploymentStatus{
		{State: entity.STATUS_RUNNING},
		{State: entity.STATUS_RUNNING},
		{State: entity.STATUS_SUCCEEDED},
	}}
	c, sleeps := testController(gtwy)

	var observed []entity.DeploymentState
	status, err := c.WaitForDeployment(context.Background(), &entity.DeploymentStatusRequest{
		AppName:      "genieiq",
		DeploymentId: "d-2",
	}, time.Second, 0, func(s *entity.DeploymentStatus) {
		observed = append(observed, s.State)
	})
	require.NoError(t, err)
	require.Equal(t, entity.STATUS_SUCCEEDED, status.State)

	// Exactly three fetches with a sleep between consecutive ones, and no
	// further calls after the terminal state
	require.Equal(t, 3, gtwy.statusCalls)
	require.Equal(t, 2, *sleeps)
	require.Equal(t, []entity.DeploymentState{
		entity.STATUS_RUNNING,
		entity.STATUS_RUNNING,
		entity.STATUS_SUCCEEDED,
	}, observed)
}

func TestWaitForDeploymentSurfacesFailureMessage(t *testing.T) {
	gtwy := &fakeGateway{statuses: []*entity.DeploymentStatus{
		{State: entity.STATUS_FAILED, Message: "boom"},
	}}
	c, sleeps := testController(gtwy)

	status, err := c.WaitForDeployment(context.Background(), &entity.DeploymentStatusRequest{
		AppName:      "genieiq",
		DeploymentId: "d-2",
	}, time.Second, 0, nil)
	require.NoError(t, err)
	require.Equal(t, entity.STATUS_FAILED, status.State)
	require.Equal(t, "boom", status.Message)
	require.Equal(t, 1, gtwy.statusCalls)
	require.Equal(t, 0, *sleeps)
}

func TestWaitForDeploymentTimesOut(t *testing.T) {
	gtwy := &fakeGateway{statuses: []*entity.DeploymentStatus{
		{State: entity.STATUS_RUNNING},
	}}
	c, sleeps := testController(gtwy)

	_, err := c.WaitForDeployment(context.Background(), &entity.DeploymentStatusRequest{
		AppName:      "genieiq",
		DeploymentId: "d-2",
	}, time.Second, 3, nil)
	require.Error(t, err)
	require.True(t, stderrors.Is(err, errors.ErrTimeout))
	require.Equal(t, 3, gtwy.statusCalls)
	require.Equal(t, 2, *sleeps)
}

func TestWaitForDeploymentStoppedAndErrorAreTerminal(t *testing.T) {
	for _, state := range []entity.DeploymentState{entity.STATUS_STOPPED, entity.STATUS_ERROR} {
		gtwy := &fakeGateway{statuses: []*entity.DeploymentStatus{{State: state}}}
		c, _ := testController(gtwy)

		status, err := c.WaitForDeployment(context.Background(), &entity.DeploymentStatusRequest{
			AppName:      "genieiq",
			DeploymentId: "d-2",
		}, time.Second, 0, nil)
		require.NoError(t, err)
		require.Equal(t, state, status.State)
		require.Equal(t, 1, gtwy.statusCalls)
	}
}
