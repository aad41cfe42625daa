// cmd/client/main.go
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/taskboard/taskboard/pkg/auth"
)

// Smoke-test client: walks the full task lifecycle against a running
// server and fails loudly on the first unexpected status code.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	token := flag.String("token", "", "bearer token (minted locally when empty)")
	secret := flag.String("secret", "dev-access-secret-change-in-production", "JWT secret used to mint a token")
	user := flag.String("user", "smoke-test-user", "user id for the minted token")
	flag.Parse()

	if *token == "" {
		verifier := auth.NewJWTVerifier(*secret, 15*time.Minute)
		minted, err := verifier.GenerateToken(*user, *user+"@example.com")
		if err != nil {
			log.Fatalf("Failed to mint token: %v", err)
		}
		*token = minted
	}

	c := &client{
		base:  *baseURL,
		token: *token,
		http:  &http.Client{Timeout: 10 * time.Second},
	}

	fmt.Println("Taskboard API smoke test")

	c.step(http.MethodGet, "/api/health", nil, http.StatusOK)

	created := c.step(http.MethodPost, "/api/tasks", map[string]any{
		"title":       "Write release notes",
		"description": "Cover the task API changes",
	}, http.StatusCreated)

	var task struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(created, &task); err != nil || task.ID == "" {
		log.Fatalf("Create response missing task id: %s", created)
	}

	c.step(http.MethodGet, "/api/tasks", nil, http.StatusOK)
	c.step(http.MethodGet, "/api/tasks/"+task.ID, nil, http.StatusOK)
	c.step(http.MethodPut, "/api/tasks/"+task.ID, map[string]any{"completed": true}, http.StatusOK)
	c.step(http.MethodPut, "/api/tasks/"+task.ID, map[string]any{}, http.StatusBadRequest)
	c.step(http.MethodDelete, "/api/tasks/"+task.ID, nil, http.StatusOK)
	c.step(http.MethodGet, "/api/tasks/"+task.ID, nil, http.StatusNotFound)

	fmt.Println("All steps passed")
}

type client struct {
	base  string
	token string
	http  *http.Client
}

func (c *client) step(method, path string, body any, want int) []byte {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			log.Fatalf("%s %s: encode body: %v", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("%s %s: read body: %v", method, path, err)
	}
	if resp.StatusCode != want {
		log.Fatalf("%s %s: got %d, want %d (%s)", method, path, resp.StatusCode, want, data)
	}

	fmt.Printf("%-6s %-40s %d\n", method, path, resp.StatusCode)
	return data
}
