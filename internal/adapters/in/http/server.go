package http

import (
	"errors"
	"net/http"

	"amsral/internal/core/application/usecases/commands"
	"amsral/internal/core/application/usecases/queries"
	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"
	"amsral/internal/core/domain/model/user"
	"amsral/internal/core/domain/services"
	"amsral/internal/generated/servers"
	"amsral/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler   commands.CreateCustomerCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	addOrderRecordHandler   commands.AddOrderRecordCommandHandler
	assignProcessingHandler commands.AssignRecordProcessingCommandHandler
	completeRecordHandler   commands.CompleteRecordCommandHandler
	markDeliveredHandler    commands.MarkOrderDeliveredCommandHandler
	createInvoiceHandler    commands.CreateInvoiceCommandHandler
	createUserHandler       commands.CreateUserCommandHandler

	// Query handlers
	getCustomersHandler        queries.GetCustomersQueryHandler
	getIncompleteOrdersHandler queries.GetIncompleteOrdersQueryHandler
	getOrderRecordsHandler     queries.GetOrderRecordsQueryHandler
	getDashboardCountsHandler  queries.GetDashboardCountsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderRecordHandler commands.AddOrderRecordCommandHandler,
	assignProcessingHandler commands.AssignRecordProcessingCommandHandler,
	completeRecordHandler commands.CompleteRecordCommandHandler,
	markDeliveredHandler commands.MarkOrderDeliveredCommandHandler,
	createInvoiceHandler commands.CreateInvoiceCommandHandler,
	createUserHandler commands.CreateUserCommandHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
	getIncompleteOrdersHandler queries.GetIncompleteOrdersQueryHandler,
	getOrderRecordsHandler queries.GetOrderRecordsQueryHandler,
	getDashboardCountsHandler queries.GetDashboardCountsQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:      createCustomerHandler,
		createOrderHandler:         createOrderHandler,
		addOrderRecordHandler:      addOrderRecordHandler,
		assignProcessingHandler:    assignProcessingHandler,
		completeRecordHandler:      completeRecordHandler,
		markDeliveredHandler:       markDeliveredHandler,
		createInvoiceHandler:       createInvoiceHandler,
		createUserHandler:          createUserHandler,
		getCustomersHandler:        getCustomersHandler,
		getIncompleteOrdersHandler: getIncompleteOrdersHandler,
		getOrderRecordsHandler:     getOrderRecordsHandler,
		getDashboardCountsHandler:  getDashboardCountsHandler,
	}
}

const (
	defaultPage     = 1
	defaultPageSize = 50
)

// GetCustomers handles GET /api/v1/customers - lists customers sorted by name.
func (s *Server) GetCustomers(ctx echo.Context, params servers.GetCustomersParams) error {
	nameFilter := ""
	if params.Name != nil {
		nameFilter = *params.Name
	}
	page := defaultPage
	if params.Page != nil {
		page = *params.Page
	}
	pageSize := defaultPageSize
	if params.PageSize != nil {
		pageSize = *params.PageSize
	}

	query, err := queries.NewGetCustomersQuery(nameFilter, page, pageSize)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer filter: " + err.Error(),
		})
	}

	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err, "Failed to retrieve customers")
	}

	response := make([]servers.Customer, len(customers))
	for i, customer := range customers {
		response[i] = servers.Customer{
			Id:      customer.ID.Bytes(),
			Name:    customer.Name,
			Phone:   optionalString(customer.Phone),
			Address: optionalString(customer.Address),
			Active:  customer.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var newCustomer servers.CreateCustomerRequest
	if err := ctx.Bind(&newCustomer); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID := kernel.NewUUID()

	cmd, err := commands.NewCreateCustomerCommand(
		customerID,
		newCustomer.Name,
		stringValue(newCustomer.Phone),
		stringValue(newCustomer.Address),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer data: " + err.Error(),
		})
	}

	if handleErr := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr, "Failed to create customer")
	}

	return ctx.JSON(http.StatusCreated, servers.Customer{
		Id:      customerID.Bytes(),
		Name:    newCustomer.Name,
		Phone:   newCustomer.Phone,
		Address: newCustomer.Address,
		Active:  true,
	})
}

// CreateOrder handles POST /api/v1/orders - opens a new order for a customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.CreateOrderRequest
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromBytes(newOrder.CustomerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, newOrder.Reference)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	orderID, handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return s.handleError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, servers.CreateOrderResponse{OrderId: orderID})
}

// GetActiveOrders handles GET /api/v1/orders/active - lists orders still in the workflow.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetIncompleteOrdersQuery()

	orders, err := s.getIncompleteOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, row := range orders {
		response[i] = servers.Order{
			Id:           row.ID,
			CustomerId:   row.CustomerID.Bytes(),
			CustomerName: row.CustomerName,
			Reference:    row.Reference,
			Status:       row.Status,
			RecordCount:  row.RecordCount,
			Quantity:     row.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderRecords handles GET /api/v1/orders/{orderId}/records.
func (s *Server) GetOrderRecords(ctx echo.Context, orderId int64) error {
	query, err := queries.NewGetOrderRecordsQuery(orderId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	records, err := s.getOrderRecordsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err, "Failed to retrieve order records")
	}

	response := make([]servers.OrderRecord, len(records))
	for i, record := range records {
		response[i] = servers.OrderRecord{
			Id:                record.ID.Bytes(),
			TrackingNumber:    record.TrackingNumber,
			Quantity:          record.Quantity,
			WashType:          record.WashType,
			WashingMachine:    optionalString(record.WashingMachine),
			DryingMachine:     optionalString(record.DryingMachine),
			DeliveredQuantity: record.DeliveredQuantity,
			ReturnQuantity:    record.ReturnQuantity,
			Status:            record.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddOrderRecord handles POST /api/v1/orders/{orderId}/records - adds a record
// and returns its allocated tracking number.
func (s *Server) AddOrderRecord(ctx echo.Context, orderId int64) error {
	var newRecord servers.AddOrderRecordRequest
	if err := ctx.Bind(&newRecord); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddOrderRecordCommand(orderId, newRecord.Quantity, order.WashType(newRecord.WashType))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid record data: " + err.Error(),
		})
	}

	trackingNumber, handleErr := s.addOrderRecordHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return s.handleError(ctx, handleErr, "Failed to add order record")
	}

	return ctx.JSON(http.StatusCreated, servers.AddOrderRecordResponse{TrackingNumber: trackingNumber})
}

// AssignRecordProcessing handles POST /api/v1/orders/{orderId}/records/{recordId}/processing.
func (s *Server) AssignRecordProcessing(ctx echo.Context, orderId int64, recordId openapi_types.UUID) error {
	var assignment servers.AssignProcessingRequest
	if err := ctx.Bind(&assignment); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	recordID, err := kernel.UUIDFromBytes(recordId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid record id: " + err.Error(),
		})
	}

	var processTypes []string
	if assignment.ProcessTypes != nil {
		processTypes = *assignment.ProcessTypes
	}

	cmd, err := commands.NewAssignRecordProcessingCommand(
		orderId,
		recordID,
		processTypes,
		assignment.WashingMachine,
		stringValue(assignment.DryingMachine),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid processing assignment: " + err.Error(),
		})
	}

	if handleErr := s.assignProcessingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr, "Failed to assign processing")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteRecord handles POST /api/v1/orders/{orderId}/records/{recordId}/completion.
func (s *Server) CompleteRecord(ctx echo.Context, orderId int64, recordId openapi_types.UUID) error {
	var completion servers.CompleteRecordRequest
	if err := ctx.Bind(&completion); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	recordID, err := kernel.UUIDFromBytes(recordId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid record id: " + err.Error(),
		})
	}

	cmd, err := commands.NewCompleteRecordCommand(orderId, recordID, completion.DeliveredQuantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid completion data: " + err.Error(),
		})
	}

	if handleErr := s.completeRecordHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr, "Failed to complete record")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/delivery.
func (s *Server) DeliverOrder(ctx echo.Context, orderId int64) error {
	cmd, err := commands.NewMarkOrderDeliveredCommand(orderId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	if handleErr := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr, "Failed to deliver order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InvoiceOrder handles POST /api/v1/orders/{orderId}/invoice.
func (s *Server) InvoiceOrder(ctx echo.Context, orderId int64) error {
	var request servers.InvoiceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	invoiceID := kernel.NewUUID()

	cmd, err := commands.NewCreateInvoiceCommand(invoiceID, orderId, request.UnitPriceCents)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid invoice data: " + err.Error(),
		})
	}

	if handleErr := s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr, "Failed to create invoice")
	}

	return ctx.JSON(http.StatusCreated, servers.InvoiceOrderResponse{InvoiceId: invoiceID.Bytes()})
}

// CreateUser handles POST /api/v1/users - creates an operator account.
func (s *Server) CreateUser(ctx echo.Context) error {
	var newUser servers.CreateUserRequest
	if err := ctx.Bind(&newUser); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	userID := kernel.NewUUID()

	cmd, err := commands.NewCreateUserCommand(userID, newUser.Username, newUser.Password, user.Role(newUser.Role))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid user data: " + err.Error(),
		})
	}

	if handleErr := s.createUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.handleError(ctx, handleErr, "Failed to create user")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetDashboard handles GET /api/v1/dashboard - order counts per workflow stage.
func (s *Server) GetDashboard(ctx echo.Context) error {
	query := queries.NewGetDashboardCountsQuery()

	counts, err := s.getDashboardCountsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err, "Failed to retrieve dashboard counts")
	}

	return ctx.JSON(http.StatusOK, servers.DashboardCounts{
		PendingOrders:    counts.PendingOrders,
		ProcessingOrders: counts.ProcessingOrders,
		CompletedOrders:  counts.CompletedOrders,
		DeliveredOrders:  counts.DeliveredOrders,
		ActiveCustomers:  counts.ActiveCustomers,
	})
}

// handleError maps domain errors to HTTP status codes.
func (s *Server) handleError(ctx echo.Context, err error, message string) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, services.ErrTrackingNumbersExhausted):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message + ": " + err.Error(),
	})
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
