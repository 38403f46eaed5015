package health

import (
	"fmt"
	"time"
)

// timed выполняет проверку check и заполняет имя и длительность проверки.
func timed(name string, check func() (Status, string)) Check {
	start := time.Now()
	status, message := check()
	return Check{
		Name:       name,
		Status:     status,
		Message:    message,
		DurationMs: time.Since(start).Milliseconds(),
	}
}

// SimpleChecker считает компонент unhealthy, если функция вернула ошибку.
type SimpleChecker struct {
	name    string
	checkFn func() error
}

func NewSimpleChecker(name string, checkFn func() error) *SimpleChecker {
	return &SimpleChecker{name: name, checkFn: checkFn}
}

func (c *SimpleChecker) Check() Check {
	return timed(c.name, func() (Status, string) {
		if err := c.checkFn(); err != nil {
			return StatusUnhealthy, err.Error()
		}
		return StatusHealthy, ""
	})
}

// ThresholdChecker: degraded, когда измерение превышает порог; порог <= 0 отключает сравнение.
type ThresholdChecker struct {
	name      string
	threshold int
	measure   func() (int, error)
}

// NewThresholdChecker создаёт проверку с порогом degradedAbove.
func NewThresholdChecker(name string, degradedAbove int, measure func() (int, error)) *ThresholdChecker {
	return &ThresholdChecker{name: name, threshold: degradedAbove, measure: measure}
}

func (c *ThresholdChecker) Check() Check {
	return timed(c.name, func() (Status, string) {
		value, err := c.measure()
		if err != nil {
			return StatusUnhealthy, err.Error()
		}
		if c.threshold > 0 && value > c.threshold {
			return StatusDegraded, fmt.Sprintf("%d exceeds threshold %d", value, c.threshold)
		}
		return StatusHealthy, ""
	})
}
