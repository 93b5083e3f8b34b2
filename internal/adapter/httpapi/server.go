package httpapi

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"

	"github.com/example/customer-page-service/internal/domain"
	"github.com/example/customer-page-service/internal/metrics"
	"github.com/example/customer-page-service/internal/usecase"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageOrderList   = "order"
	pageOrderDetail = "order-detail"
	pageNotFound    = "not-found"

	paramPage    = "page"
	paramPerPage = "perPage"
	paramID      = "id"
)

type Deps struct {
	OrderList          usecase.GetOrderList
	OrderDetails       usecase.GetOrderDetails
	Customers          domain.CustomerClient
	OrderSearchEnabled bool
	SessionCookie      string
	LoginPath          string
	Logger             *slog.Logger
	Metrics            *metrics.Metrics
	// MetricsHandler is mounted on /metrics when set.
	MetricsHandler http.Handler
	// HealthChecks are run by /healthz; any error turns it into a 503.
	HealthChecks map[string]func(context.Context) error
}

type Server struct {
	Router *mux.Router
	deps   Deps
	tmpl   *template.Template
}

func NewServer(deps Deps) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"money":       formatMoney,
		"getUsername": func() string { return "" },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{Router: mux.NewRouter(), deps: deps, tmpl: tmpl}
	s.Router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	if deps.MetricsHandler != nil {
		s.Router.Handle("/metrics", deps.MetricsHandler).Methods(http.MethodGet)
	}

	customer := s.Router.PathPrefix("/customer").Subrouter()
	customer.Use(s.requireCustomer)
	customer.HandleFunc("/order", s.handleOrderList).Methods(http.MethodGet)
	customer.HandleFunc("/order/details", s.handleOrderDetails).Methods(http.MethodGet)
	return s, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for name, check := range s.deps.HealthChecks {
		if err := check(r.Context()); err != nil {
			s.deps.Logger.WarnContext(r.Context(), "health check failed", "check", name, "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = fmt.Fprintf(w, "%s: unavailable", name)
			return
		}
	}
	_, _ = w.Write([]byte("ok"))
}

type ctxKey int

const (
	customerKey ctxKey = iota
	sessionKey
)

type session struct {
	id        string
	customers *requestCustomers
}

// requestCustomers resolves the session customer at most once per request.
type requestCustomers struct {
	client   domain.CustomerClient
	once     sync.Once
	customer domain.Customer
	err      error
}

func (rc *requestCustomers) CurrentCustomer(ctx context.Context, sessionID string) (domain.Customer, error) {
	rc.once.Do(func() {
		rc.customer, rc.err = rc.client.CurrentCustomer(ctx, sessionID)
	})
	return rc.customer, rc.err
}

func (s *Server) requireCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session{customers: &requestCustomers{client: s.deps.Customers}}
		if c, err := r.Cookie(s.deps.SessionCookie); err == nil {
			sess.id = c.Value
		}

		ctx := r.Context()
		customer, err := sess.customers.CurrentCustomer(ctx, sess.id)
		if err != nil {
			if !errors.Is(err, domain.ErrNotLoggedIn) {
				s.deps.Logger.ErrorContext(ctx, "customer lookup failed", "error", err)
			}
			http.Redirect(w, r, s.deps.LoginPath, http.StatusFound)
			return
		}

		ctx = context.WithValue(ctx, sessionKey, sess)
		ctx = context.WithValue(ctx, customerKey, customer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func customerFrom(ctx context.Context) domain.Customer {
	c, _ := ctx.Value(customerKey).(domain.Customer)
	return c
}

// OrderListView is the data of the order list page.
type OrderListView struct {
	Pagination           domain.Pagination
	OrderList            []domain.Order
	IsOrderSearchEnabled bool
}

func (s *Server) handleOrderList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	strategy := usecase.StrategyFor(s.deps.OrderSearchEnabled)
	params := usecase.ListParams{
		Page:    intParam(r, paramPage),
		PerPage: intParam(r, paramPerPage),
	}

	list, err := s.deps.OrderList.Execute(ctx, customerFrom(ctx), params, strategy)
	if err != nil {
		s.internalError(w, r, pageOrderList, err)
		return
	}

	s.render(w, r, pageOrderList, http.StatusOK, OrderListView{
		Pagination:           list.Pagination,
		OrderList:            list.Orders,
		IsOrderSearchEnabled: strategy.IsSearch(),
	})
}

func (s *Server) handleOrderDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _ := strconv.ParseInt(r.URL.Query().Get(paramID), 10, 64)

	details, err := s.deps.OrderDetails.Execute(ctx, customerFrom(ctx), id)
	if errors.Is(err, domain.ErrNotFound) {
		s.deps.Metrics.OrderNotFound()
		s.render(w, r, pageNotFound, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		s.internalError(w, r, pageOrderDetail, err)
		return
	}

	s.deps.Metrics.ShipmentExpensesReplaced(len(details.OrderShipmentExpenses.Replaced))
	s.render(w, r, pageOrderDetail, http.StatusOK, details)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, page string, status int, data any) {
	t, err := s.tmpl.Clone()
	if err != nil {
		s.internalError(w, r, page, err)
		return
	}
	t.Funcs(template.FuncMap{"getUsername": s.usernameFunc(r)})

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, page+".html", data); err != nil {
		s.internalError(w, r, page, fmt.Errorf("render %s: %w", page, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	s.deps.Metrics.PageRendered(page, status)
}

// usernameFunc backs the getUsername template function.
func (s *Server) usernameFunc(r *http.Request) func() string {
	return func() string {
		ctx := r.Context()
		sess, ok := ctx.Value(sessionKey).(session)
		if !ok {
			return ""
		}
		uc := usecase.GetUsername{Customers: sess.customers, Logger: s.deps.Logger}
		name, _ := uc.Execute(ctx, sess.id)
		return name
	}
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, page string, err error) {
	s.deps.Logger.ErrorContext(r.Context(), "customer page failed", "page", page, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
	s.deps.Metrics.PageRendered(page, http.StatusInternalServerError)
}

// intParam returns 0 for a missing or malformed query parameter.
func intParam(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}

func formatMoney(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, currency)
}
