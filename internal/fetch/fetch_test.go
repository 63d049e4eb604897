// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestPageTextExtractsReadableText(t *testing.T) {
	page := `<html><head><title>Acme</title><style>body{color:red}</style></head>
	<body>
		<nav><a href="/">Home</a><a href="/about">About</a></nav>
		<script>console.log("tracking")</script>
		<main>
			<h1>Acme Widgets</h1>
			<p>We build the   best widgets
			in the world.</p>
		</main>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	f := New(0, 0)
	got, err := f.PageText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("PageText: unexpected error: %v", err)
	}

	if !strings.Contains(got, "Acme Widgets") {
		t.Errorf("text missing heading: %q", got)
	}
	if !strings.Contains(got, "We build the best widgets in the world.") {
		t.Errorf("whitespace not collapsed: %q", got)
	}
	if strings.Contains(got, "console.log") {
		t.Errorf("script leaked into text: %q", got)
	}
	if strings.Contains(got, "About") {
		t.Errorf("nav leaked into text: %q", got)
	}
}

func TestPageTextTruncates(t *testing.T) {
	long := strings.Repeat("word ", 2000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>" + long + "</p></body></html>"))
	}))
	defer srv.Close()

	f := New(0, 100)
	got, err := f.PageText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("PageText: unexpected error: %v", err)
	}
	if len(got) != 100 {
		t.Errorf("len: got %d, want 100", len(got))
	}
}

func TestPageTextTruncatesOnRuneBoundary(t *testing.T) {
	// 3-byte runes: a 100-byte cut point lands mid-rune and must back up.
	long := strings.Repeat("日", 100)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><p>" + long + "</p></body></html>"))
	}))
	defer srv.Close()

	f := New(0, 100)
	got, err := f.PageText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("PageText: unexpected error: %v", err)
	}
	if !utf8.ValidString(got) {
		t.Error("text contains invalid UTF-8 after truncation")
	}
	if len(got) > 100 {
		t.Errorf("len: got %d, want at most 100", len(got))
	}
}

func TestPageTextNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := New(0, 0)
	if _, err := f.PageText(context.Background(), srv.URL); err == nil {
		t.Error("PageText: expected error for 404 response")
	}
}

func TestPageTextInvalidURL(t *testing.T) {
	f := New(0, 0)
	if _, err := f.PageText(context.Background(), "not-a-url"); err == nil {
		t.Error("PageText: expected error for relative url")
	}
}

func TestPageTextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("<html><body>late</body></html>"))
	}))
	defer srv.Close()

	f := New(20*time.Millisecond, 0)
	if _, err := f.PageText(context.Background(), srv.URL); err == nil {
		t.Error("PageText: expected timeout error")
	}
}

func TestPageTextSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	f := New(0, 0)
	if _, err := f.PageText(context.Background(), srv.URL); err != nil {
		t.Fatalf("PageText: unexpected error: %v", err)
	}
	if gotUA != userAgent {
		t.Errorf("User-Agent: got %q, want %q", gotUA, userAgent)
	}
}
