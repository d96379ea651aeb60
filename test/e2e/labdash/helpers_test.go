//go:build e2e

package labdash_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/labdash/pkg/dashsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Shared helpers for the dashboard end-to-end tests: image build, container
 * setup, bootstrap and login.
 */

const (
	testImageName = "labdash-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminEmail     = "admin@lab.test"
	adminName      = "Administrador"
	adminPassword  = "Admin123!"
)

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building labdash Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up labdash Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/labdash/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	_ = exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName).Run()
}

// containerEnv is the environment every test container starts with. The
// relaxed limits keep rapid test traffic from tripping the strict profile.
func containerEnv(relaxedLimits bool) map[string]string {
	env := map[string]string{
		"BOOTSTRAP_TOKEN":       bootstrapToken,
		"LABDASH_ISSUER":        "labdash-e2e",
		"LABDASH_NUM_KEYS":      "1",
		"LABDASH_COOKIE_SECURE": "false",
		"ENV":                   "test",
		"LOG_LEVEL":             "info",
		"LOG_FORMAT":            "json",
	}
	if relaxedLimits {
		env["RATELIMIT_STRICT_REQUESTS"] = "1000"
		env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
		env["RATELIMIT_STRICT_BURST"] = "1000"
		env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
		env["RATELIMIT_MODERATE_BURST"] = "1000"
	}
	return env
}

func startContainer(t *testing.T, relaxedLimits bool) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          containerEnv(relaxedLimits),
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
	return baseURL, cleanup
}

// setupContainer starts the dashboard with relaxed rate limits.
func setupContainer(t *testing.T) (string, func()) {
	return startContainer(t, true)
}

// setupContainerWithDefaultRateLimits keeps the production limits, for the
// rate limit tests.
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	return startContainer(t, false)
}

func newClient(t *testing.T, baseURL string) *dashsdk.Client {
	t.Helper()
	c, err := dashsdk.NewClient(baseURL)
	require.NoError(t, err)
	return c
}

// bootstrapAdmin creates the first administrator and returns a client signed
// in as them.
func bootstrapAdmin(t *testing.T, baseURL string) *dashsdk.Client {
	t.Helper()
	ctx := t.Context()

	c := newClient(t, baseURL)
	resp, err := c.Bootstrap(ctx, bootstrapToken, dashsdk.BootstrapRequest{
		Email: adminEmail, Password: adminPassword, FullName: adminName,
	})
	require.NoError(t, err, "Bootstrap should succeed")
	require.NotEmpty(t, resp.UserID)

	_, err = c.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err, "Admin login should succeed")
	return c
}

// createAndLogin creates a user through admin and returns a client signed in
// as them.
func createAndLogin(t *testing.T, admin *dashsdk.Client, baseURL, email, role string) (*dashsdk.Client, *dashsdk.SessionResponse) {
	t.Helper()
	ctx := t.Context()

	_, err := admin.CreateUser(ctx, dashsdk.CreateUserRequest{
		Email: email, Password: "Secreto123", FullName: "Usuario " + role, Role: role,
	})
	require.NoError(t, err)

	c := newClient(t, baseURL)
	sess, err := c.Login(ctx, email, "Secreto123")
	require.NoError(t, err)
	return c, sess
}

func assertHealthy(t *testing.T, health *dashsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
