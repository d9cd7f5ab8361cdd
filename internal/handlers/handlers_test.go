package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/statement_analytics/internal/apperrors"
	"github.com/SscSPs/statement_analytics/internal/core/domain"
	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
	"github.com/SscSPs/statement_analytics/internal/dto"
	"github.com/SscSPs/statement_analytics/internal/handlers"
	"github.com/SscSPs/statement_analytics/internal/middleware"
	"github.com/SscSPs/statement_analytics/internal/platform/config"
	"github.com/SscSPs/statement_analytics/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	cfg             *config.Config
	mockImport      *MockImportService
	mockTransaction *MockTransactionService
	mockTag         *MockTagService
	mockSummary     *MockSummaryService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = &config.Config{MaxUploadBytes: 1 << 20, SearchPageSize: 50}

	suite.mockImport = new(MockImportService)
	suite.mockTransaction = new(MockTransactionService)
	suite.mockTag = new(MockTagService)
	suite.mockSummary = new(MockSummaryService)

	handlers.RegisterRoutes(suite.router, suite.cfg, suite.container(), nil)
}

func (suite *HandlerTestSuite) container() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Import:      suite.mockImport,
		Tag:         suite.mockTag,
		Transaction: suite.mockTransaction,
		Summary:     suite.mockSummary,
	}
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockImport.AssertExpectations(suite.T())
	suite.mockTransaction.AssertExpectations(suite.T())
	suite.mockTag.AssertExpectations(suite.T())
	suite.mockSummary.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	return suite.serve(req)
}

func (suite *HandlerTestSuite) sendJSON(method, url string, body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(method, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return suite.serve(req)
}

func uploadRequest(fieldName, fileName, content string) *http.Request {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile(fieldName, fileName)
	_, _ = part.Write([]byte(content))
	_ = mw.Close()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/imports", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

var errConnReset = errors.New("connection reset")

func stringPtr(s string) *string { return &s }

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.get("/health")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Imports ---

func (suite *HandlerTestSuite) TestImport_Success() {
	content := "Account number;Amount\n123;1,00\n"
	result := &domain.ImportResult{BatchID: "b-1", FileName: "statement.csv", Encoding: "utf-8-sig", Imported: 1}
	suite.mockImport.On("ImportFile", mock.Anything, "statement.csv", []byte(content)).Return(result, nil).Once()

	w := suite.serve(uploadRequest("file", "statement.csv", content))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ImportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("b-1", resp.BatchID)
	suite.Equal(1, resp.Imported)
}

func (suite *HandlerTestSuite) TestImport_MissingFile() {
	w := suite.serve(uploadRequest("document", "statement.csv", "x"))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestImport_UnreadableFileIs422() {
	suite.mockImport.On("ImportFile", mock.Anything, "bad.csv", mock.Anything).
		Return(nil, fmt.Errorf("%w: no account column", apperrors.ErrUnreadableFile)).Once()

	w := suite.serve(uploadRequest("file", "bad.csv", "garbage"))
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestImport_ConcurrentDuplicateIs409() {
	suite.mockImport.On("ImportFile", mock.Anything, "statement.csv", mock.Anything).
		Return(nil, fmt.Errorf("failed to insert transactions: %w", apperrors.ErrDuplicate)).Once()

	w := suite.serve(uploadRequest("file", "statement.csv", "data"))
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestImport_StorageFailureIs500() {
	suite.mockImport.On("ImportFile", mock.Anything, "statement.csv", mock.Anything).
		Return(nil, apperrors.NewAppError(500, "failed to commit", errConnReset)).Once()

	w := suite.serve(uploadRequest("file", "statement.csv", "data"))
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to import statement")
	suite.NotContains(w.Body.String(), "failed to commit", "Internal errors are not leaked")
}

func (suite *HandlerTestSuite) TestImport_RateLimited() {
	lim, err := middleware.NewRateLimiter("1-M")
	suite.Require().NoError(err)

	router := gin.New()
	handlers.RegisterRoutes(router, suite.cfg, suite.container(), lim)
	suite.mockImport.On("ImportFile", mock.Anything, "statement.csv", mock.Anything).
		Return(&domain.ImportResult{}, nil).Once()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, uploadRequest("file", "statement.csv", "data"))
	suite.Equal(http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, uploadRequest("file", "statement.csv", "data"))
	suite.Equal(http.StatusTooManyRequests, second.Code)
}

// --- Transactions ---

func (suite *HandlerTestSuite) TestListTransactions_FiltersAndPaging() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	page := &domain.TransactionPage{
		Transactions: []domain.Transaction{
			{ID: 1, AccountingDate: start, ValueDate: start, Amount: decimal.NewFromInt(-700)},
			{ID: 2, AccountingDate: start, ValueDate: start, Amount: decimal.NewFromInt(-40)},
		},
		Total: 5,
	}
	suite.mockTransaction.On("Search", mock.Anything,
		mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.Flow == domain.FlowExpense && f.Search == "rent" && f.StartDate != nil && f.StartDate.Equal(start) && f.EndDate == nil
		}),
		domain.ListOptions{SortBy: domain.SortByAmount, Order: domain.SortAsc, Limit: 2, Offset: 0},
	).Return(page, nil).Once()

	w := suite.get("/api/v1/transactions?flow=out&search=rent&startDate=2024-01-01&sortBy=amount&order=asc&limit=2")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 2)
	suite.Equal(5, resp.Total)
	suite.Equal("2024-01-01", resp.Transactions[0].AccountingDate)
	suite.Require().NotNil(resp.NextToken)
	offset, err := pagination.DecodeToken(*resp.NextToken)
	suite.NoError(err)
	suite.Equal(2, offset)
}

func (suite *HandlerTestSuite) TestListTransactions_DefaultsAndNextToken() {
	suite.mockTransaction.On("Search", mock.Anything, domain.TransactionFilter{Flow: domain.FlowAll},
		domain.ListOptions{SortBy: domain.SortByAccountingDate, Order: domain.SortDesc, Limit: 50, Offset: 100},
	).Return(&domain.TransactionPage{Transactions: []domain.Transaction{}, Total: 100}, nil).Once()

	w := suite.get("/api/v1/transactions?sortBy=bogus&nextToken=" + pagination.EncodeToken(100))

	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), "nextToken")
}

func (suite *HandlerTestSuite) TestListTransactions_PageNumber() {
	suite.mockTransaction.On("Search", mock.Anything, mock.Anything,
		domain.ListOptions{SortBy: domain.SortByAccountingDate, Order: domain.SortDesc, Limit: 10, Offset: 20},
	).Return(&domain.TransactionPage{Transactions: []domain.Transaction{}, Total: 45}, nil).Once()

	w := suite.get("/api/v1/transactions?page=3&limit=10")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(pagination.Meta{Page: 3, PageSize: 10, TotalPages: 5, Total: 45}, resp.Pagination)
}

func (suite *HandlerTestSuite) TestListTransactions_InvalidQuery() {
	for _, q := range []string{"flow=sideways", "startDate=01.02.2024", "order=up", "nextToken=%21%21", "page=-1", "limit=-3"} {
		w := suite.get("/api/v1/transactions?" + q)
		suite.Equal(http.StatusBadRequest, w.Code, q)
	}
}

func (suite *HandlerTestSuite) TestListTransactions_ServiceValidationIs400() {
	suite.mockTransaction.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: start date after end date", apperrors.ErrValidation)).Once()

	w := suite.get("/api/v1/transactions?startDate=2024-02-01&endDate=2024-01-01")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestFindSimilar() {
	result := &domain.SimilarResult{
		TransactionID: 7,
		OriginalTag:   stringPtr("Rent"),
		Matches: []domain.Match{
			{ID: 3, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(-700), Tag: stringPtr("Rent")},
		},
	}
	suite.mockTransaction.On("FindSimilar", mock.Anything, int64(7)).Return(result, nil).Once()

	w := suite.get("/api/v1/transactions/7/similar")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SimilarResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.TransactionID)
	suite.Require().Len(resp.Matches, 1)
	suite.Equal("2024-02-01", resp.Matches[0].Date)
}

func (suite *HandlerTestSuite) TestFindSimilar_NotFoundAndBadID() {
	suite.mockTransaction.On("FindSimilar", mock.Anything, int64(99)).
		Return(nil, fmt.Errorf("transaction 99: %w", apperrors.ErrNotFound)).Once()

	suite.Equal(http.StatusNotFound, suite.get("/api/v1/transactions/99/similar").Code)
	suite.Equal(http.StatusBadRequest, suite.get("/api/v1/transactions/abc/similar").Code)
	suite.Equal(http.StatusBadRequest, suite.get("/api/v1/transactions/0/similar").Code)
}

func (suite *HandlerTestSuite) TestFindPatterns() {
	patterns := []domain.Pattern{{
		Basis: domain.PatternByCounterparty,
		Key:   "DE001",
		Label: "Counterparty: DE001",
		Count: 2,
		Transactions: []domain.Match{
			{ID: 1, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(-10)},
			{ID: 2, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(-10)},
		},
	}}
	suite.mockTransaction.On("FindPatterns", mock.Anything,
		mock.MatchedBy(func(f domain.TransactionFilter) bool { return f.Flow == domain.FlowIncome }),
	).Return(patterns, nil).Once()

	w := suite.get("/api/v1/patterns?flow=in")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.PatternResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("counterparty", resp[0].Type)
	suite.Equal(2, resp[0].Count)
}

// --- Tagging ---

func (suite *HandlerTestSuite) TestTagTransaction() {
	tag := &domain.Tag{ID: 4, Name: "Rent", Color: domain.DefaultTagColor}
	suite.mockTag.On("TagTransaction", mock.Anything, int64(12), "Rent").Return(tag, nil).Once()

	w := suite.sendJSON(http.MethodPut, "/api/v1/transactions/12/tag", dto.TagTransactionRequest{TagName: "Rent"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TagResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(4), resp.ID)
}

func (suite *HandlerTestSuite) TestTagTransaction_Errors() {
	suite.Equal(http.StatusBadRequest,
		suite.sendJSON(http.MethodPut, "/api/v1/transactions/12/tag", map[string]string{}).Code)

	suite.mockTag.On("TagTransaction", mock.Anything, int64(13), "Rent").
		Return(nil, fmt.Errorf("transaction 13: %w", apperrors.ErrNotFound)).Once()
	suite.Equal(http.StatusNotFound,
		suite.sendJSON(http.MethodPut, "/api/v1/transactions/13/tag", dto.TagTransactionRequest{TagName: "Rent"}).Code)
}

func (suite *HandlerTestSuite) TestBulkTag() {
	suite.mockTag.On("BulkAssignTag", mock.Anything, []int64{1, 2, 3}, "Food").Return(int64(3), nil).Once()

	w := suite.sendJSON(http.MethodPost, "/api/v1/transactions/tags/bulk",
		dto.BulkTagRequest{TransactionIDs: []int64{1, 2, 3}, TagName: "Food"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BulkTagResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(3), resp.Updated)
}

func (suite *HandlerTestSuite) TestBulkTag_EmptyListRejectedBeforeService() {
	w := suite.sendJSON(http.MethodPost, "/api/v1/transactions/tags/bulk",
		dto.BulkTagRequest{TransactionIDs: []int64{}, TagName: "Food"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Tags ---

func (suite *HandlerTestSuite) TestListTags() {
	suite.mockTag.On("ListTags", mock.Anything).Return([]domain.Tag{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil).Once()

	w := suite.get("/api/v1/tags")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TagResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
}

func (suite *HandlerTestSuite) TestCreateTag() {
	tag := &domain.Tag{ID: 9, Name: "Groceries", Color: "#00ff00"}
	suite.mockTag.On("CreateTag", mock.Anything, "Groceries", "#00ff00").Return(tag, nil).Once()

	w := suite.sendJSON(http.MethodPost, "/api/v1/tags", dto.CreateTagRequest{Name: "Groceries", Color: "#00ff00"})
	suite.Equal(http.StatusCreated, w.Code)

	for _, color := range []string{"green", "#abc", "#aabbccdd"} {
		bad := suite.sendJSON(http.MethodPost, "/api/v1/tags", dto.CreateTagRequest{Name: "Groceries", Color: color})
		suite.Equal(http.StatusBadRequest, bad.Code, "color %q", color)
	}
	suite.mockTag.AssertNumberOfCalls(suite.T(), "CreateTag", 1)
}

func (suite *HandlerTestSuite) TestTagTotals() {
	totals := []domain.TagTotal{{TagID: 1, Name: "Rent", Total: decimal.NewFromInt(-1400), TransactionCount: 2}}
	suite.mockTag.On("TagTotals", mock.Anything).Return(totals, nil).Once()

	w := suite.get("/api/v1/tags/totals")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"total":"-1400"`)
}

// --- Summaries ---

func (suite *HandlerTestSuite) TestSummaries() {
	suite.mockSummary.On("Aggregate", mock.Anything, domain.GranularityWeek).
		Return(&domain.PeriodReport{Granularity: domain.GranularityWeek}, nil).Once()
	suite.mockSummary.On("Aggregate", mock.Anything, domain.GranularityMonth).
		Return(&domain.PeriodReport{Granularity: domain.GranularityMonth, Warning: "unavailable"}, nil).Once()

	w := suite.get("/api/v1/summaries?granularity=week")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"periods":[]`)

	fallback := suite.get("/api/v1/summaries?granularity=fortnight")
	suite.Equal(http.StatusOK, fallback.Code)
	suite.Contains(fallback.Body.String(), `"warning":"unavailable"`)
}

func (suite *HandlerTestSuite) TestOverview() {
	suite.mockSummary.On("Overview", mock.Anything).Return(&domain.Overview{
		TotalIn:  decimal.NewFromInt(100),
		TotalOut: decimal.NewFromInt(-40),
		Balance:  decimal.NewFromInt(60),
		Series: []domain.CumulativePoint{
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), CumulativeIn: decimal.NewFromInt(100), CumulativeOut: decimal.NewFromInt(-40)},
		},
	}, nil).Once()

	w := suite.get("/api/v1/overview")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.OverviewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(60)))
	suite.Require().Len(resp.Series, 1)
	suite.Equal("2024-01-01", resp.Series[0].Date)
}

func (suite *HandlerTestSuite) TestOverview_Failure() {
	suite.mockSummary.On("Overview", mock.Anything).Return(nil, errConnReset).Once()
	suite.Equal(http.StatusInternalServerError, suite.get("/api/v1/overview").Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
