// Package main provides tests for the pname CLI.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leapstack-labs/pname/internal/cli"
)

func writeDictionary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.yaml")
	content := "顧客: [customer, client]\n管理: management\nシステム: system\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write dictionary: %v", err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "pname") {
		t.Errorf("version output should contain 'pname', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	expectedCommands := []string{"generate", "batch", "dict", "serve", "version"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestGenerateJSON(t *testing.T) {
	t.Chdir(t.TempDir())
	dict := writeDictionary(t)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"generate", "-d", dict, "-o", "json", "顧客管理システム"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate error = %v", err)
	}

	var got struct {
		LogicalName   string   `json:"logicalName"`
		PhysicalName  string   `json:"physicalName"`
		TokenMappings []string `json:"tokenMappings"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if got.PhysicalName != "customerClientManagementSystem" {
		t.Errorf("physicalName = %q, want %q", got.PhysicalName, "customerClientManagementSystem")
	}
	if len(got.TokenMappings) != 3 || got.TokenMappings[0] != "顧客=>customer, client" {
		t.Errorf("unexpected tokenMappings: %v", got.TokenMappings)
	}
}

func TestUnknownCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"frobnicate"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestServeCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	dict := writeDictionary(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	cmd := cli.NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"serve", "-d", dict, "--addr", addr})

	ctx, cancel := contextWithCancel(t)
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	body := `{"logicalName":"顧客管理","tokenizerType":"optimal","namingConvention":"upper_snake","enableFallback":false}`
	var resp *http.Response
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		resp, err = http.Post("http://"+addr+"/api/generate", "application/json", strings.NewReader(body))
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server did not start: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var got struct {
		Success      bool   `json:"success"`
		PhysicalName string `json:"physicalName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if !got.Success || got.PhysicalName != "CUSTOMER_CLIENT_MANAGEMENT" {
		t.Errorf("unexpected response: %+v", got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not shut down")
	}
}

func contextWithCancel(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx, cancel
}
