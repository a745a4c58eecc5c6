// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/smartspend/backend/config"
	"github.com/smartspend/backend/internal/application/usecase/data"
	"github.com/smartspend/backend/internal/infra/dependency"
	"github.com/smartspend/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Last created resource, for {id} path placeholders
	lastID string

	// Wiring
	cfg      *config.Config
	injector *dependency.Injector
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		dbMock := mock.NewDb()
		if err := dbMock.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		cfg := config.Load()
		injector := dependency.NewInjector(cfg, dbMock.DbConn, redisClient)

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			cfg:            cfg,
			injector:       injector,
		}
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDataSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items$`, theResponseListShouldHaveItems)
}

// registerDataSteps registers data lifecycle and ledger helper steps.
func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the demo dataset is seeded$`, theDemoDatasetIsSeeded)
	ctx.Step(`^demo seeding should be suppressed$`, demoSeedingShouldBeSuppressed)
	ctx.Step(`^I add an expense of "([^"]*)" in category "([^"]*)" dated today$`, iAddAnExpenseDatedToday)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func theDemoDatasetIsSeeded(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	output, err := tc.injector.SeedDemoData.Execute(ctx, data.SeedDemoDataInput{})
	if err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}
	if !output.Seeded {
		return fmt.Errorf("demo seeding was suppressed")
	}
	return nil
}

func demoSeedingShouldBeSuppressed(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	output, err := tc.injector.SeedDemoData.Execute(ctx, data.SeedDemoDataInput{})
	if err != nil {
		return fmt.Errorf("failed to run demo seeding: %w", err)
	}
	if output.Seeded {
		return fmt.Errorf("expected demo seeding to be suppressed, but it ran")
	}
	return nil
}

// iAddAnExpenseDatedToday posts an expense dated today, so budget
// evaluation against the current calendar month sees it.
func iAddAnExpenseDatedToday(ctx context.Context, amount, category string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(
		`{"type":"expense","amount":%s,"category":"%s","date":"%s","payment_method":"card"}`,
		amount, category, time.Now().UTC().Format("2006-01-02"),
	)
	if err := tc.send(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(body)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func (tc *TestContext) send(method, endpoint string, body io.Reader) error {
	endpoint = strings.ReplaceAll(endpoint, "{id}", tc.lastID)

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	tc.captureLastID()
	return nil
}

// captureLastID remembers the id of a created resource so later steps can
// reference it through the {id} path placeholder.
func (tc *TestContext) captureLastID() {
	var payload map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return
	}

	if nested, ok := payload["transaction"].(map[string]interface{}); ok {
		payload = nested
	}
	if id, ok := payload["id"].(string); ok {
		tc.lastID = id
	}
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.send(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.send(method, endpoint, bytes.NewBufferString(body.Content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

// lookupField resolves a dotted path like "budget.state" in the response.
func (tc *TestContext) lookupField(path string) (interface{}, error) {
	var node interface{}
	if err := json.Unmarshal(tc.responseBody, &node); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, part := range strings.Split(path, ".") {
		obj, ok := node.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("field '%s' is not an object", path)
		}
		node, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field '%s' not found in response. Body: %s", path, string(tc.responseBody))
		}
	}
	return node, nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	_, err := tc.lookupField(field)
	return err
}

func theResponseListShouldHaveItems(ctx context.Context, field string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	list, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field '%s' is not a list", field)
	}
	if len(list) != expected {
		return fmt.Errorf("field '%s' expected %d items, got %d. Body: %s", field, expected, len(list), string(tc.responseBody))
	}
	return nil
}
