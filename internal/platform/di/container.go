// internal/platform/di/container.go
package di

import (
	"errors"
	"net/http"

	"sunshinesaree/internal/adapters/in/http/middleware"
	storerouter "sunshinesaree/internal/adapters/in/http/store"
	storehandler "sunshinesaree/internal/adapters/in/http/store/handler"
	fsadapters "sunshinesaree/internal/adapters/out/firestore"
	"sunshinesaree/internal/adapters/out/gcs"
	"sunshinesaree/internal/adapters/out/identitytoolkit"
	lsadapters "sunshinesaree/internal/adapters/out/localstore"
	"sunshinesaree/internal/adapters/out/mail"
	cartapp "sunshinesaree/internal/application/cart"
	catalogapp "sunshinesaree/internal/application/catalog"
	checkoutapp "sunshinesaree/internal/application/checkout"
	orderviewapp "sunshinesaree/internal/application/orderview"
	sessionapp "sunshinesaree/internal/application/session"
	wishlistapp "sunshinesaree/internal/application/wishlist"
)

// Container wires the storefront: repositories over both replicas,
// session-scoped aggregates, usecases and HTTP handlers.
type Container struct {
	Infra *Infra

	// Application services
	Cart     *cartapp.Service
	Wishlist *wishlistapp.Service
	Catalog  *catalogapp.Service
	Session  *sessionapp.Service
	Checkout *checkoutapp.Usecase
	Orders   *orderviewapp.Query

	// HTTP
	Identity *middleware.IdentityMiddleware
	Deps     storerouter.Deps
}

// NewContainer builds the full dependency graph on top of shared infra.
func NewContainer(infra *Infra) (*Container, error) {
	if infra == nil {
		return nil, errors.New("di.container: infra is nil")
	}
	if infra.Firestore == nil || infra.Firestore.Client == nil {
		return nil, errors.New("di.container: firestore client is nil")
	}
	if infra.Local == nil {
		return nil, errors.New("di.container: local snapshot store is nil")
	}

	fsClient := infra.Firestore.Client

	// out adapters: Firestore replica
	cartRepo := fsadapters.NewCartRepositoryFS(fsClient)
	wishRepo := fsadapters.NewWishlistRepositoryFS(fsClient)
	orderRepo := fsadapters.NewOrderRepositoryFS(fsClient)
	userRepo := fsadapters.NewUserRepositoryFS(fsClient)
	viewRepo := fsadapters.NewProductViewRepositoryFS(fsClient)

	// out adapters: local replica
	cartLocal := lsadapters.NewCartSnapshotLS(infra.Local)
	wishLocal := lsadapters.NewWishlistSnapshotLS(infra.Local)
	orderArchive := lsadapters.NewOrderArchiveLS(infra.Local)
	userLocal := lsadapters.NewUserSnapshotLS(infra.Local)

	// mailer (nil when unconfigured; flows degrade to log-only)
	var mailer *mail.SendGridClient
	if infra.Config.SendGridAPIKey != "" {
		mailer = mail.NewSendGridClient(infra.Config.SendGridAPIKey)
	}

	// product images
	var images catalogapp.ImageResolver
	if infra.GCS != nil && infra.ProductImageBucket != "" {
		images = gcs.NewProductImageRepositoryGCS(infra.GCS, infra.ProductImageBucket)
	}

	// application services
	cartSvc := cartapp.NewService(cartRepo, cartLocal)
	wishSvc := wishlistapp.NewService(wishRepo, wishLocal)
	catalogSvc := catalogapp.NewService(viewRepo, images)

	var toolkit *identitytoolkit.Client
	if infra.WebAPIKey != "" {
		toolkit = identitytoolkit.New(infra.WebAPIKey)
	}

	var sessionMailer sessionapp.EmailClient
	if mailer != nil {
		sessionMailer = mailer
	}
	sessionSvc := sessionapp.NewService(
		infra.FirebaseAuth,
		toolkit,
		userRepo,
		userLocal,
		sessionMailer,
		infra.Config.MailFrom,
		infra.Config.GoogleAuthDomains,
	)
	sessionSvc.AddBinder(cartSvc)
	sessionSvc.AddBinder(wishSvc)

	checkoutUC := &checkoutapp.Usecase{
		Cart:     cartSvc,
		Orders:   orderRepo,
		Archive:  orderArchive,
		MailFrom: infra.Config.MailFrom,
	}
	if mailer != nil {
		checkoutUC.Mailer = mailer
	}

	orderQuery := &orderviewapp.Query{
		Orders:  orderRepo,
		Archive: orderArchive,
	}

	c := &Container{
		Infra:    infra,
		Cart:     cartSvc,
		Wishlist: wishSvc,
		Catalog:  catalogSvc,
		Session:  sessionSvc,
		Checkout: checkoutUC,
		Orders:   orderQuery,
	}

	c.Identity = &middleware.IdentityMiddleware{
		FirebaseAuth: infra.FirebaseAuth,
		Session:      sessionSvc,
	}

	c.Deps = storerouter.Deps{
		Product:  storehandler.NewProductHandler(catalogSvc),
		Cart:     storehandler.NewCartHandler(cartSvc, catalogSvc),
		Wishlist: storehandler.NewWishlistHandler(wishSvc, catalogSvc),
		Checkout: storehandler.NewCheckoutHandler(checkoutUC),
		Order:    storehandler.NewOrderHandler(orderQuery),
		Auth:     storehandler.NewAuthHandler(sessionSvc),
	}

	return c, nil
}

// Handler builds the full storefront handler: routes wrapped with
// identity resolution and panic recovery. CORS is applied by the caller
// so the chain order stays CORS(Recover(Identity(routes))).
func (c *Container) Handler() http.Handler {
	mux := http.NewServeMux()
	storerouter.Register(mux, c.Deps)

	var h http.Handler = mux
	if c.Identity != nil {
		h = c.Identity.Handler(h)
	}
	return middleware.Recover(h)
}
