package chat_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/pake"
	"github.com/aussiebroadwan/wgchat/pkg/chatsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared helpers for the chat service end-to-end tests.
 */

const (
	testImageName = "wgchat-test:latest"

	tokenSecret  = "e2e-token-secret-that-is-long-enough-0123"
	testPassword = "Corr3ctHorseBattery"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Chat Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Chat Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/chat/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// chatEnv is the container environment shared by every test. The OPAQUE
// setup is generated per container so tests never share credentials.
func chatEnv(relaxedLimits bool) map[string]string {
	env := map[string]string{
		"OPAQUE_SERVER_SETUP": pake.GenerateSetup().String(),
		"TOKEN_SECRET":        tokenSecret,
		"TOKEN_ISSUER":        "wgchat-e2e",
		"DATABASE_FILE":       "/data/wgchat.db",
		"CONVERSATION_STORE":  "badger",
		"BADGER_DIR":          "/data/history",
		"ENV":                 "test",
		"LOG_LEVEL":           "info",
		"LOG_FORMAT":          "json",
	}
	if relaxedLimits {
		// Tests make many rapid requests from one address.
		env["RATELIMIT_STRICT_REQUESTS"] = "1000"
		env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
		env["RATELIMIT_STRICT_BURST"] = "1000"
		env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
		env["RATELIMIT_MODERATE_BURST"] = "1000"
	}
	return env
}

// setupChatContainer starts the chat service with relaxed rate limits and
// returns its base URL.
func setupChatContainer(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, chatEnv(true))
}

// setupChatContainerWithDefaultRateLimits keeps the production limits. Only
// the rate limit tests should need it.
func setupChatContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, chatEnv(false))
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
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

// registerUser registers username and returns a client holding its session.
func registerUser(t *testing.T, baseURL, username string) *chatsdk.Client {
	t.Helper()

	client := chatsdk.NewClient(baseURL)
	sess, err := client.Register(t.Context(), username, username+"@example.com", testPassword)
	require.NoError(t, err, "Register should succeed")
	require.Equal(t, username, sess.Username)
	require.NotEmpty(t, sess.UserID)

	return client
}

// openStream subscribes and consumes the initial self event.
func openStream(t *testing.T, client *chatsdk.Client, username, lastEventID string) *chatsdk.EventStream {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	stream, err := client.Subscribe(ctx, lastEventID)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stream.Close() })

	ev, err := stream.Next()
	require.NoError(t, err)
	require.Equal(t, chatsdk.EventSelf, ev.Type)
	require.Equal(t, username, ev.Self)

	return stream
}

// nextMessage reads the next event and asserts it carries a message.
func nextMessage(t *testing.T, stream *chatsdk.EventStream) chatsdk.Message {
	t.Helper()

	ev, err := stream.Next()
	require.NoError(t, err)
	require.Equal(t, chatsdk.EventMessage, ev.Type)
	require.NotNil(t, ev.Message)
	require.Equal(t, ev.Message.ID, ev.ID, "SSE id should match the message id")

	return *ev.Message
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *chatsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
