package main

import (
	"crypto/rand"
	"fmt"
	mrand "math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

// Hammers GET /orders/{id} to exercise the read cache. ORDER_ID should name an
// existing order; a fifth of requests use a random id and miss.

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func main() {
	baseURL := env("BASE_URL", "http://localhost:8080") + "/orders/"
	orderID := os.Getenv("ORDER_ID")

	for {
		var wg sync.WaitGroup
		for range mrand.Intn(10) {
			wg.Go(func() { doRequest(baseURL, orderID) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(baseURL, orderID string) {
	id := orderID
	if id == "" || mrand.Intn(5) == 0 {
		id = rand.Text()
	}

	url := baseURL + id
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
