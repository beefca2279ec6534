package services

import (
	portsrepo "github.com/SscSPs/purchase_transactions/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/purchase_transactions/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...TransactionServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo, repos.ExchangeRateRepo, options...),
	}
}
