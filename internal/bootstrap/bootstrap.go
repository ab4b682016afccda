package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authinadapter "paperdrill/internal/modules/auth/adapter/in"
	authoutadapter "paperdrill/internal/modules/auth/adapter/out"
	authservice "paperdrill/internal/modules/auth/service"
	authusecase "paperdrill/internal/modules/auth/usecase"
	cataloginadapter "paperdrill/internal/modules/catalog/adapter/in"
	catalogoutadapter "paperdrill/internal/modules/catalog/adapter/out"
	catalogservice "paperdrill/internal/modules/catalog/service"
	catalogusecase "paperdrill/internal/modules/catalog/usecase"
	exerciseinadapter "paperdrill/internal/modules/exercise/adapter/in"
	exerciseservice "paperdrill/internal/modules/exercise/service"
	exerciseusecase "paperdrill/internal/modules/exercise/usecase"
	ledgeroutadapter "paperdrill/internal/modules/ledger/adapter/out"
	ledgerservice "paperdrill/internal/modules/ledger/service"
	ledgerusecase "paperdrill/internal/modules/ledger/usecase"
	ledgerin "paperdrill/internal/modules/ledger/port/in"
	reflectioninadapter "paperdrill/internal/modules/reflection/adapter/in"
	reflectionoutadapter "paperdrill/internal/modules/reflection/adapter/out"
	reflectionin "paperdrill/internal/modules/reflection/port/in"
	reflectionservice "paperdrill/internal/modules/reflection/service"
	reflectionusecase "paperdrill/internal/modules/reflection/usecase"
	"paperdrill/internal/platform/clock"
	"paperdrill/internal/platform/config"
	"paperdrill/internal/platform/id"
	"paperdrill/internal/platform/metrics"
	"paperdrill/internal/platform/sheet"
	"paperdrill/internal/server"
	uiapp "paperdrill/internal/ui/app"
)

type App struct {
	CatalogCLI  cataloginadapter.CLIHandler
	ExerciseTUI exerciseinadapter.TUIHandler
	Ledger      ledgerin.Usecase
	Reflection  reflectionin.Usecase
	Metrics     *metrics.Metrics

	handlers server.Handlers
	book     sheet.Book
	logger   *zap.Logger
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	clk := clock.SystemClock{}
	m := metrics.New()

	book, err := openBook(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	entryStore, err := ledgeroutadapter.NewSheetEntryStore(ctx, book)
	if err != nil {
		_ = book.Close()
		return nil, fmt.Errorf("new entry store: %w", err)
	}
	ledgerUC := ledgerusecase.NewInteractor(ledgerservice.NewLedgerService(clk, cfg.Offset, entryStore))

	articleStore, err := catalogoutadapter.NewSheetArticleStore(ctx, book)
	if err != nil {
		_ = book.Close()
		return nil, fmt.Errorf("new article store: %w", err)
	}
	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(articleStore), ledgerUC)

	exerciseUC := exerciseusecase.NewInteractor(exerciseservice.NewEngine(id.UUID{}, nil), catalogUC)

	reflectionUC := reflectionusecase.NewInteractor(reflectionservice.NewReflectionService(
		reflectionoutadapter.NewCatalogWriter(catalogUC),
		reflectionoutadapter.NewLedgerAppender(ledgerUC),
		logger.Named("reflection"),
		m,
	))

	handlers := server.Handlers{
		Catalog:    cataloginadapter.NewHTTPHandler(catalogUC),
		Reflection: reflectioninadapter.NewHTTPHandler(reflectionUC),
		Metrics:    m.Handler(),
	}
	// Without a secret the HTTP surface stays unauthenticated; serve refuses
	// to start in that case, local commands do not care.
	if cfg.SessionSecret != "" {
		issuer, err := authoutadapter.NewJWTIssuer(cfg.SessionSecret)
		if err != nil {
			_ = book.Close()
			return nil, fmt.Errorf("new token issuer: %w", err)
		}
		authUC := authusecase.NewInteractor(authservice.NewAuthService(clk, cfg.AppPassword, issuer), m)
		handlers.Auth = authinadapter.NewHTTPHandler(authUC, cfg.CookieSecure)
		handlers.Gate = authinadapter.Gate(authUC)
	}

	return &App{
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		ExerciseTUI: exerciseinadapter.NewTUIHandler(exerciseUC),
		Ledger:      ledgerUC,
		Reflection:  reflectionUC,
		Metrics:     m,
		handlers:    handlers,
		book:        book,
		logger:      logger,
	}, nil
}

func openBook(ctx context.Context, cfg config.StoreConfig) (sheet.Book, error) {
	switch cfg.Backend {
	case config.BackendSheets:
		book, err := sheet.OpenSheets(ctx, sheet.SheetsConfig{
			SpreadsheetID: cfg.SheetID,
			Email:         cfg.ServiceAccountEmail,
			PrivateKey:    cfg.PrivateKey,
			Tabs: map[string]int{
				catalogoutadapter.TableName: 0,
				ledgeroutadapter.TableName:  1,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("open sheets book: %w", err)
		}
		return book, nil
	default:
		book, err := sheet.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite book: %w", err)
		}
		return book, nil
	}
}

// Server builds the HTTP surface over the same usecases the CLI uses.
func (a *App) Server() *echo.Echo {
	return server.New(a.handlers, a.logger)
}

func (a *App) Close() error {
	return a.book.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.CatalogCLI, app.ExerciseTUI, app.Reflection)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
