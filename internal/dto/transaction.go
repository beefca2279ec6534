package dto

import (
	"time"

	"github.com/SscSPs/purchase_transactions/internal/core/domain"
	"github.com/SscSPs/purchase_transactions/internal/utils"
	"github.com/SscSPs/purchase_transactions/internal/utils/conversion"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a purchase.
// Fields are pointers so an absent field can be told apart from a zero value.
type CreateTransactionRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"number"`
}

// CurrencyQuery carries the target currency label, e.g. "Canada-Dollar".
type CurrencyQuery struct {
	Currency string `form:"currency"`
}

// TransactionResponse defines the data returned for a stored transaction.
type TransactionResponse struct {
	TransactionID int64     `json:"transactionId"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount" example:"1000.50"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ConvertedTransactionResponse defines a transaction reported in a foreign currency.
type ConvertedTransactionResponse struct {
	TransactionID             int64           `json:"transactionId"`
	Description               string          `json:"description"`
	AmountInUSD               string          `json:"amountInUSD" example:"1000.00"`
	Currency                  string          `json:"currency"`
	ExchangeRate              decimal.Decimal `json:"exchangeRate" swaggertype:"string" example:"7.831"`
	ExchangeRateEffectiveDate string          `json:"exchangeRateEffectiveDate"`
	Amount                    string          `json:"amount"`
	TransactionDate           string          `json:"transactionDate"`
}

// EnquireLastTransactionResponse wraps the converted most recent transaction.
type EnquireLastTransactionResponse struct {
	Transaction ConvertedTransactionResponse `json:"transaction"`
}

// ListTransactionsResponse wraps every converted transaction.
type ListTransactionsResponse struct {
	TransactionList []ConvertedTransactionResponse `json:"transactionList"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: tx.TransactionID,
		Description:   tx.Description,
		Amount:        utils.FormatAmount(tx.Amount),
		CreatedAt:     tx.CreatedAt,
	}
}

// ToConvertedTransactionResponse converts a domain.ConvertedTransaction to its DTO
func ToConvertedTransactionResponse(ct *domain.ConvertedTransaction) ConvertedTransactionResponse {
	return ConvertedTransactionResponse{
		TransactionID:             ct.TransactionID,
		Description:               ct.Description,
		AmountInUSD:               utils.FormatAmount(ct.AmountInUSD),
		Currency:                  ct.Currency,
		ExchangeRate:              ct.ExchangeRate,
		ExchangeRateEffectiveDate: conversion.FormatDate(ct.ExchangeRateEffectiveDate),
		Amount:                    utils.FormatAmount(ct.Amount),
		TransactionDate:           conversion.FormatDate(ct.TransactionDate),
	}
}

// ToListTransactionsResponse converts a slice of domain.ConvertedTransaction into the list DTO
func ToListTransactionsResponse(cts []domain.ConvertedTransaction) ListTransactionsResponse {
	res := make([]ConvertedTransactionResponse, len(cts))
	for i := range cts {
		res[i] = ToConvertedTransactionResponse(&cts[i])
	}
	return ListTransactionsResponse{TransactionList: res}
}
