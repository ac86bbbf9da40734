// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// ReceiptRow is the raw denormalized row joining a walk, its payment record,
// both participants and the pet list. Producing the join is the persistence
// layer's job; shaping it for display is the receipt assembler's.
type ReceiptRow struct {
	PaymentID     int64
	WalkID        int64
	AmountPaid    float64
	PaymentDate   *time.Time
	PaymentMethod string
	TransactionID string
	PaymentStatus string
	PaymentNotes  string

	ScheduledStart time.Time
	ActualStart    *time.Time
	ScheduledEnd   time.Time
	ActualEnd      *time.Time
	StartAddress   string
	Duration       *int
	Distance       *float64
	TotalPrice     float64
	WalkPrice      float64
	WalkStatus     WalkStatus

	WalkerID    int64
	WalkerName  string
	WalkerEmail string
	WalkerPhone string
	WalkerImage string

	OwnerID    int64
	OwnerName  string
	OwnerEmail string
	OwnerPhone string
	OwnerImage string

	PetIDs   []int64
	PetNames []string

	WalkerHadDiscount        bool
	WalkerDiscountPercentage float64

	WalkCreatedAt    time.Time
	PaymentCreatedAt *time.Time
}

// Receipt is the derived read-only projection served for a single walk.
// It has no independent lifecycle and is recomputed on every read.
type Receipt struct {
	PaymentID     int64      `json:"paymentId"`
	WalkID        int64      `json:"walkId"`
	AmountPaid    float64    `json:"amountPaid"`
	PaymentDate   *time.Time `json:"paymentDate"`
	PaymentMethod string     `json:"paymentMethod"`
	TransactionID string     `json:"transactionId"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentNotes  string     `json:"paymentNotes"`

	Walk           ReceiptWalk           `json:"walk"`
	Walker         ReceiptParticipant    `json:"walker"`
	Owner          ReceiptParticipant    `json:"owner"`
	Pets           ReceiptPets           `json:"pets"`
	WalkerSettings ReceiptWalkerSettings `json:"walkerSettings"`
	CreatedAt      ReceiptTimestamps     `json:"createdAt"`
}

// ReceiptWalk carries the walk portion of a receipt.
type ReceiptWalk struct {
	ScheduledStart time.Time  `json:"scheduledStartTime"`
	ActualStart    *time.Time `json:"actualStartTime"`
	ScheduledEnd   time.Time  `json:"scheduledEndTime"`
	ActualEnd      *time.Time `json:"actualEndTime"`
	StartAddress   string     `json:"startAddress"`
	Duration       *int       `json:"duration"`
	Distance       *float64   `json:"distance"`
	TotalPrice     float64    `json:"totalPrice"`
	WalkPrice      float64    `json:"walkPrice"`
	Status         string     `json:"status"`
}

// ReceiptParticipant is the contact summary of a walker or owner.
type ReceiptParticipant struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Image string `json:"image"`
}

// ReceiptPets lists the pets that took part in the walk.
type ReceiptPets struct {
	IDs   []int64  `json:"ids"`
	Names []string `json:"names"`
}

// ReceiptWalkerSettings carries the discount the walker had at payment time.
type ReceiptWalkerSettings struct {
	HadDiscount        bool    `json:"hadDiscount"`
	DiscountPercentage float64 `json:"discountPercentage"`
}

// ReceiptTimestamps groups creation times of the joined records.
type ReceiptTimestamps struct {
	Walk    time.Time  `json:"walk"`
	Payment *time.Time `json:"payment"`
}

// ReceiptSummary is the lighter-weight shape used when listing a user's
// receipts.
type ReceiptSummary struct {
	PaymentID      int64      `json:"paymentId"`
	WalkID         int64      `json:"walkId"`
	AmountPaid     float64    `json:"amountPaid"`
	PaymentDate    *time.Time `json:"paymentDate"`
	PaymentMethod  string     `json:"paymentMethod"`
	PaymentStatus  string     `json:"paymentStatus"`
	ScheduledStart time.Time  `json:"scheduledStartTime"`
	StartAddress   string     `json:"startAddress"`
	WalkStatus     string     `json:"walkStatus"`
	WalkerName     string     `json:"walkerName"`
	OwnerName      string     `json:"ownerName"`
	PetNames       []string   `json:"petNames"`
}
