package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"autobot_site_go/config"
)

// Rejection reasons tracked by the abuse monitor
const (
	RejectCaptcha   = "captcha"
	RejectRateLimit = "rate_limit"
)

const (
	abuseWindow    = 10 * time.Minute
	abuseThreshold = 5
	alertCooldown  = time.Hour
	maxAlerts      = 100
)

// AbuseMonitor aggregates rejected form submissions per IP and raises an
// alert when one address keeps getting rejected
type AbuseMonitor struct {
	mu         sync.Mutex
	cfg        *config.Config
	now        func() time.Time
	rejections map[string][]time.Time // IP -> rejection timestamps
	alertedIPs map[string]time.Time   // IP -> last alert time
	alerts     []AbuseAlert           // newest first
	done       chan struct{}
	stop       sync.Once
}

// AbuseAlert is one raised alert
type AbuseAlert struct {
	Timestamp time.Time
	IP        string
	Reason    string
	Count     int
}

// Monitor is the global abuse monitor
var Monitor *AbuseMonitor

// InitAbuseMonitor initializes the global monitor. Alerts are emailed to the
// sales inbox when one is configured.
func InitAbuseMonitor(cfg *config.Config) *AbuseMonitor {
	Monitor = NewAbuseMonitor(cfg)
	return Monitor
}

// NewAbuseMonitor creates a monitor and starts its cleanup loop
func NewAbuseMonitor(cfg *config.Config) *AbuseMonitor {
	m := &AbuseMonitor{
		cfg:        cfg,
		now:        time.Now,
		rejections: make(map[string][]time.Time),
		alertedIPs: make(map[string]time.Time),
		done:       make(chan struct{}),
	}
	go m.cleanup()
	return m
}

// TrackRejection records a rejected submission from ip
func (m *AbuseMonitor) TrackRejection(ip, reason string) {
	if m == nil || ip == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	windowStart := now.Add(-abuseWindow)
	recent := m.rejections[ip][:0]
	for _, t := range m.rejections[ip] {
		if t.After(windowStart) {
			recent = append(recent, t)
		}
	}
	recent = append(recent, now)
	m.rejections[ip] = recent

	if len(recent) >= abuseThreshold {
		m.alertLocked(ip, reason, len(recent))
	}
}

// alertLocked logs and emails an alert, at most once per hour per IP
func (m *AbuseMonitor) alertLocked(ip, reason string, count int) {
	now := m.now()
	if last, ok := m.alertedIPs[ip]; ok && now.Sub(last) < alertCooldown {
		return
	}
	m.alertedIPs[ip] = now

	alert := AbuseAlert{Timestamp: now, IP: ip, Reason: reason, Count: count}
	m.alerts = append([]AbuseAlert{alert}, m.alerts...)
	if len(m.alerts) > maxAlerts {
		m.alerts = m.alerts[:maxAlerts]
	}

	log.Printf("[SECURITY ALERT] %d rejected submissions (%s) from IP: %s", count, reason, ip)

	if m.cfg != nil && m.cfg.SalesNotifyEmail != "" {
		SendEmailAsync(m.cfg, &Email{
			To:      []string{m.cfg.SalesNotifyEmail},
			Subject: fmt.Sprintf("Contact form abuse from %s", ip),
			TextBody: fmt.Sprintf("%d submissions from %s were rejected (%s) in the last %s.\nTime: %s",
				count, ip, reason, abuseWindow, now.Format(time.RFC1123)),
		})
	}
}

// RecentAlerts returns a copy of recent alerts, newest first
func (m *AbuseMonitor) RecentAlerts() []AbuseAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	alerts := make([]AbuseAlert, len(m.alerts))
	copy(alerts, m.alerts)
	return alerts
}

// Stop ends the cleanup loop
func (m *AbuseMonitor) Stop() {
	m.stop.Do(func() { close(m.done) })
}

func (m *AbuseMonitor) cleanup() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.prune()
		}
	}
}

// prune drops IPs with no recent rejections and expired alert cooldowns
func (m *AbuseMonitor) prune() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for ip, times := range m.rejections {
		if len(times) == 0 || now.Sub(times[len(times)-1]) > abuseWindow {
			delete(m.rejections, ip)
		}
	}
	for ip, last := range m.alertedIPs {
		if now.Sub(last) > alertCooldown {
			delete(m.alertedIPs, ip)
		}
	}
}
