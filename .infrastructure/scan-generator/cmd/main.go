package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	scansProduced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scan_generator_events_total",
		Help: "Общее количество отправленных скан-событий",
	})

	produceErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scan_generator_errors_total",
		Help: "Количество ошибок отправки в Kafka",
	})
)

type scanEvent struct {
	TrackingID  string `json:"trackingId"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

var statuses = []string{"picked_up", "in_transit", "out_for_delivery", "delivered", "failed"}

var locations = []string{
	"Sorting hub North",
	"Sorting hub South",
	"Regional depot 12",
	"Last-mile station 7",
}

func randomEvent() scanEvent {
	return scanEvent{
		TrackingID: fmt.Sprintf("SW-%04d", 1+rand.Intn(50)),
		Status:     statuses[rand.Intn(len(statuses))],
		Location:   locations[rand.Intn(len(locations))],
	}
}

func main() {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "parcel-scans"
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), cfg)
	if err != nil {
		log.Fatalf("create producer: %v", err)
	}
	defer producer.Close()

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	for {
		event := randomEvent()
		payload, _ := json.Marshal(event)

		_, _, err := producer.SendMessage(&sarama.ProducerMessage{
			Topic: topic,
			Key:   sarama.StringEncoder(event.TrackingID),
			Value: sarama.ByteEncoder(payload),
		})
		if err != nil {
			produceErrors.Inc()
			log.Printf("send scan event: %v", err)
		} else {
			scansProduced.Inc()
		}

		time.Sleep(time.Duration(500+rand.Intn(4500)) * time.Millisecond)
	}
}
