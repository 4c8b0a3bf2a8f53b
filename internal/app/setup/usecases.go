package setup

import (
	"log"

	"escrow-deal-service/internal/usecase/dispatch"
	"escrow-deal-service/internal/usecase/identity"
	"escrow-deal-service/internal/usecase/ledger"
	"escrow-deal-service/internal/usecase/rating"
	"escrow-deal-service/internal/usecase/thread"
	nanoid "github.com/jaevor/go-nanoid"
)

// codeAlphabet excludes lowercase so codes survive user retyping.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type Usecases struct {
	Ledger   *ledger.DefaultLedgerUsecase
	Dispatch *dispatch.DefaultDispatchUsecase
	Thread   *thread.DefaultThreadUsecase
	Rating   *rating.DefaultRatingUsecase
	Identity *identity.DefaultIdentityUsecase
}

func InitializeUsecases(deps *Dependencies) *Usecases {
	cfg := deps.Config
	repos := deps.Repositories

	generateCode, err := nanoid.CustomASCII(codeAlphabet, cfg.DealSettings.CodeLength)
	if err != nil {
		log.Fatalf("failed to init code generator: %v", err)
	}

	dispatchUc := dispatch.NewDefaultDispatchUsecase(
		repos.UserRepo,
		repos.DealRepo,
		deps.Sink,
		deps.Metrics,
		deps.Log,
	)

	ledgerUc := ledger.NewDefaultLedgerUsecase(
		repos.DealRepo,
		repos.UserRepo,
		repos.WalletRepo,
		repos.ScammerRepo,
		repos.SettingsRepo,
		repos.MessageRepo,
		dispatchUc,
		deps.Publisher,
		deps.Sink,
		deps.Audit,
		deps.Metrics,
		deps.Log,
		cfg.DealSettings,
		cfg.Admin.OwnerID,
		generateCode,
	)

	threadUc := thread.NewDefaultThreadUsecase(
		repos.MessageRepo,
		repos.DealRepo,
		deps.Archive,
		deps.Audit,
		deps.Metrics,
		deps.Log,
		cfg.Admin.OwnerID,
		cfg.DealSettings.MaxMessageLen,
	)

	ratingUc := rating.NewDefaultRatingUsecase(
		repos.RatingRepo,
		repos.DealRepo,
		repos.UserRepo,
		deps.Audit,
		deps.Metrics,
		deps.Log,
		cfg.DealSettings.MinRatingsForAverage,
	)

	identityUc := identity.NewDefaultIdentityUsecase(
		repos.UserRepo,
		repos.WalletRepo,
		repos.ScammerRepo,
		repos.SettingsRepo,
		deps.Audit,
		deps.Log,
		cfg.Admin.OwnerID,
	)

	return &Usecases{
		Ledger:   ledgerUc,
		Dispatch: dispatchUc,
		Thread:   threadUc,
		Rating:   ratingUc,
		Identity: identityUc,
	}
}
