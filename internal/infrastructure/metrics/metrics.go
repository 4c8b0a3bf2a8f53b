package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DealMetrics covers the deal lifecycle, guarantor dispatch and the chat.
type DealMetrics struct {
	DealsCreatedTotal   prometheus.CounterVec
	DealsJoinedTotal    prometheus.CounterVec
	DealsCompletedTotal prometheus.CounterVec
	DealsCancelledTotal prometheus.CounterVec
	DealsReapedTotal    prometheus.Counter

	GuarantorCallsTotal    prometheus.Counter
	GuarantorsNotified     prometheus.Counter
	GuarantorAcceptsTotal  prometheus.Counter
	GuarantorRaceLostTotal prometheus.Counter

	ChatMessagesTotal     prometheus.CounterVec
	RatingsSubmittedTotal prometheus.CounterVec

	DealErrorsTotal prometheus.CounterVec
}

func NewDealMetrics() *DealMetrics {
	return &DealMetrics{
		DealsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deals_created_total",
				Help: "Total deals created",
			},
			[]string{"currency"},
		),
		DealsJoinedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deals_joined_total",
				Help: "Total deals a buyer attached to",
			},
			[]string{"currency"},
		),
		DealsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deals_completed_total",
				Help: "Total deals completed by a guarantor or admin",
			},
			[]string{"currency"},
		),
		DealsCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deals_cancelled_total",
				Help: "Total deals cancelled",
			},
			[]string{"currency"},
		),
		DealsReapedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "deals_reaped_total",
				Help: "Unattended waiting_buyer deals purged by the reaper",
			},
		),
		GuarantorCallsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "guarantor_calls_total",
				Help: "Guarantor call requests accepted by the latch",
			},
		),
		GuarantorsNotified: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "guarantors_notified_total",
				Help: "Guarantor notifications delivered",
			},
		),
		GuarantorAcceptsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "guarantor_accepts_total",
				Help: "Successful guarantor assignments",
			},
		),
		GuarantorRaceLostTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "guarantor_race_lost_total",
				Help: "Guarantor accepts that lost the assignment race",
			},
		),
		ChatMessagesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_messages_total",
				Help: "Deal thread messages appended",
			},
			[]string{"kind"},
		),
		RatingsSubmittedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ratings_submitted_total",
				Help: "Ratings submitted after deal completion",
			},
			[]string{"score"},
		),
		DealErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deal_errors_total",
				Help: "Unexpected storage errors by operation",
			},
			[]string{"operation"},
		),
	}
}
