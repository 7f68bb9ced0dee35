package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:8000/api/v1"

// adminKey must match ADMIN_API_KEY of the running server.
var adminKey = envOr("ADMIN_API_KEY", "admin-secret-key")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, apiKey string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Support Bot API Smoke Test\n")

	// 1. Create Session
	color.Yellow("\n[USER] 1. Create Session")
	resp, body, err := sendRequest("POST", "/sessions", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var createResp map[string]interface{}
	json.Unmarshal(body, &createResp)
	prettyPrint(createResp)

	sessionID, _ := createResp["session_id"].(string)
	if sessionID == "" {
		color.Red("No session_id in response, aborting")
		os.Exit(1)
	}

	// 2. Send a message with issue keywords to trigger the suggested action
	color.Yellow("\n[USER] 2. Send Message (issue keywords)")
	msgReq := map[string]interface{}{
		"text": "My order arrived broken and I want a refund",
	}
	resp, body, err = sendRequest("POST", "/sessions/"+sessionID+"/message", "", msgReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var msgResp map[string]interface{}
	json.Unmarshal(body, &msgResp)
	prettyPrint(msgResp)

	// 3. Fetch the transcript
	color.Yellow("\n[USER] 3. Get Messages")
	resp, body, err = sendRequest("GET", "/sessions/"+sessionID+"/messages", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var messages []map[string]interface{}
	json.Unmarshal(body, &messages)
	prettyPrint(messages)

	// 4. Escalate
	color.Yellow("\n[USER] 4. Escalate Session")
	resp, body, err = sendRequest("POST", "/sessions/"+sessionID+"/escalate", "", map[string]interface{}{"reason": "smoke test"})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	// 5. Feedback
	color.Yellow("\n[USER] 5. Submit Feedback")
	fbReq := map[string]interface{}{
		"session_id": sessionID,
		"rating":     5,
		"comments":   "smoke test feedback",
	}
	resp, body, err = sendRequest("POST", "/feedback", "", fbReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	// 6. Admin: metrics without credentials should be rejected
	color.Yellow("\n[ADMIN] 6. Metrics Without Key (expect 401)")
	resp, _, err = sendRequest("GET", "/metrics", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		color.Green("Status: %s (as expected)", resp.Status)
	} else {
		color.Red("Unexpected status: %s", resp.Status)
	}

	// 7. Admin: metrics with key
	color.Yellow("\n[ADMIN] 7. Metrics With API Key")
	resp, body, err = sendRequest("GET", "/metrics", adminKey, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var metricsResp map[string]interface{}
	json.Unmarshal(body, &metricsResp)
	prettyPrint(metricsResp)

	// 8. Admin: add FAQ and trigger reindex
	color.Yellow("\n[ADMIN] 8. Add FAQ + Reindex")
	faqReq := map[string]interface{}{
		"title":   "Refund policy",
		"content": "Refunds are processed within 5 business days.",
		"tags":    []string{"refund", "billing"},
	}
	resp, _, err = sendRequest("POST", "/faqs", adminKey, faqReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Add FAQ Status: %s", resp.Status)

	resp, body, err = sendRequest("POST", "/reindex", adminKey, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Reindex Status: %s", resp.Status)
	var reindexResp map[string]interface{}
	json.Unmarshal(body, &reindexResp)
	prettyPrint(reindexResp)

	color.Cyan("\n✅ Smoke test finished")
}
