package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const logFileName = "frontdesk.log"

// StartConsumer connects to RabbitMQ and consumes both domain queues,
// appending a single line per event to logs/frontdesk.log. It runs a
// reconnect loop with capped exponential backoff and never returns under
// normal operation; processing errors reject the offending message without
// requeueing so a poison message cannot loop forever.
func StartConsumer() error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL())
		if err != nil {
			log.Printf("frontdesk-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn); err != nil {
			log.Printf("frontdesk-consumer: consume loop ended: %v; reconnecting", err)
			_ = conn.Close()
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("frontdesk-consumer: set QoS failed: %v", err)
	}

	for _, name := range []string{ReservationBookedQueue, PaymentCompletedQueue} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			return fmt.Errorf("queue declare %s: %w", name, err)
		}
	}

	booked, err := ch.Consume(ReservationBookedQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", ReservationBookedQueue, err)
	}
	paid, err := ch.Consume(PaymentCompletedQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", PaymentCompletedQueue, err)
	}

	for {
		select {
		case d, ok := <-booked:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			ackOrReject(d, handleBooked(d.Body))
		case d, ok := <-paid:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			ackOrReject(d, handlePaid(d.Body))
		}
	}
}

func ackOrReject(d amqp.Delivery, err error) {
	if err != nil {
		log.Printf("frontdesk-consumer: handle message failed: %v", err)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

func handleBooked(body []byte) error {
	var ev ReservationBookedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	line := fmt.Sprintf("[%s] Reservation booked | reservation_id=%d | guest=%q | room=%s (%s) | check_in=%s | check_out=%s | total=%.2f | source=%q\n",
		ev.BookedAt, ev.ReservationID, ev.GuestName, ev.RoomNumber, ev.RoomType, ev.CheckIn, ev.CheckOut, ev.TotalAmount, ev.BookingSource)
	return appendLogLine(line)
}

func handlePaid(body []byte) error {
	var ev PaymentCompletedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	line := fmt.Sprintf("[%s] Payment completed | reservation_id=%d | invoice=%s | guest=%q | room=%s | amount=%.2f | method=%q\n",
		ev.PaidAt, ev.ReservationID, ev.InvoiceNumber, ev.GuestName, ev.RoomNumber, ev.Amount, ev.PaymentMethod)
	return appendLogLine(line)
}

func appendLogLine(line string) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
