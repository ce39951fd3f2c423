package consumer

import (
	"time"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
)

// Config — параметры цикла резервирования.
type Config struct {
	Queue              string
	BatchSize          int
	DeleteOnReserve    bool
	ReservationTimeout time.Duration
	Wait               time.Duration
	StartDelay         time.Duration
	ProcessTimeout     time.Duration
}

// reservationRequest собирает тело запроса резервирования.
// Таймауты очереди задаются в целых секундах; нулевое значение не отправляется.
func (c *Config) reservationRequest() domain.ReservationRequest {
	n := c.BatchSize
	if n < 1 {
		n = 1
	}

	return domain.ReservationRequest{
		N:       n,
		Delete:  c.DeleteOnReserve,
		Timeout: seconds(c.ReservationTimeout),
		Wait:    seconds(c.Wait),
	}
}

// seconds — длительность в целых секундах с округлением вверх: 1.5s → 2, 200ms → 1.
func seconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
