package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publishes random place-order commands to the intake topic. TOKEN must hold a
// credential minted with `marketplace-orders token`; PRODUCTS lists product
// ids present in the catalog.

type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

type Item struct {
	PID      string `json:"pid"`
	Quantity int    `json:"quantity"`
}

type PlaceOrder struct {
	Items          []Item   `json:"items"`
	User           Customer `json:"user"`
	Currency       string   `json:"currency"`
	ConversionRate float64  `json:"conversionRate"`
	PaymentMethod  string   `json:"paymentMethod"`
	PaymentID      string   `json:"paymentId,omitempty"`
	CouponCode     string   `json:"couponCode,omitempty"`
	Shipping       float64  `json:"shipping"`
}

var (
	firstNames = []string{"Jane", "John", "Maria", "Ahmed", "Li", "Olga"}
	lastNames  = []string{"Doe", "Smith", "Garcia", "Khan", "Wang", "Ivanova"}
	cities     = []string{"Lisbon", "Berlin", "Austin", "Osaka", "Cairo"}
	methods    = []string{"Stripe", "PayPal", "COD"}
)

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.IntN(len(letters))]
	}
	return string(b)
}

func pick(xs []string) string {
	return xs[rand.IntN(len(xs))]
}

func generateRandomOrder(products []string, coupon string) PlaceOrder {
	items := make([]Item, 0, 3)
	for range rand.IntN(3) + 1 {
		items = append(items, Item{PID: pick(products), Quantity: rand.IntN(3) + 1})
	}

	first, last := pick(firstNames), pick(lastNames)
	order := PlaceOrder{
		Items: items,
		User: Customer{
			FirstName: first,
			LastName:  last,
			Email:     fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), rand.IntN(1000)),
			Phone:     fmt.Sprintf("+%d", rand.IntN(999999999)),
			Address:   fmt.Sprintf("Street %d", rand.IntN(100)),
			City:      pick(cities),
			Zip:       fmt.Sprintf("%06d", rand.IntN(999999)),
			Country:   "Country" + randomString(3),
		},
		Currency:       "USD",
		ConversionRate: 1,
		PaymentMethod:  pick(methods),
		Shipping:       float64(rand.IntN(20)),
	}
	if order.PaymentMethod != "COD" {
		order.PaymentID = randomString(16)
	}
	if coupon != "" && rand.IntN(3) == 0 {
		order.CouponCode = coupon
	}
	return order
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func main() {
	token := os.Getenv("TOKEN")
	if token == "" {
		log.Fatal("TOKEN is required")
	}
	products := strings.Split(env("PRODUCTS", "p1,p2,p3"), ",")
	coupon := os.Getenv("COUPON")

	writer := &kafka.Writer{
		Addr:  kafka.TCP(strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ",")...),
		Topic: env("KAFKA_TOPIC", "orders"),
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder(products, coupon)
			data, _ := json.Marshal(order)
			err := writer.WriteMessages(ctx, kafka.Message{
				Key:     []byte(order.User.Email),
				Value:   data,
				Headers: []kafka.Header{{Key: "authorization", Value: []byte("Bearer " + token)}},
			})
			if err != nil {
				log.Println("failed to write command:", err)
				continue
			}
			log.Println("order command sent", order.User.Email, len(order.Items))
		case <-ctx.Done():
			return
		}
	}
}
