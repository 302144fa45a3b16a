package services

import (
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
)

// NewServiceContainer wires every service over the repository provider.
// autoPostOnCreate controls whether entries created by users with posting
// authority are approved and posted in the same call.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, autoPostOnCreate bool) *portssvc.ServiceContainer {
	events := NewEventRecorder(repos.Event)
	userSvc := NewUserService(repos.User, events)
	accountSvc := NewAccountService(repos.Account, repos.Ledger, events)
	entrySvc := NewEntryService(repos.Entry, accountSvc, userSvc, events, autoPostOnCreate)
	reportingSvc := NewReportingService(repos.Account)

	return &portssvc.ServiceContainer{
		Account:   accountSvc,
		Entry:     entrySvc,
		Reporting: reportingSvc,
		User:      userSvc,
		Events:    events,
	}
}
