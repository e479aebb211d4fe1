package router

import (
	"net/http"
	"net/url"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/analysis"
	"github.com/DjordjeVuckovic/faroese-analyzer/internal/apperr"
	"github.com/labstack/echo/v4"
)

type AnalyzeRequest struct {
	Text      string `json:"text" example:"Eg er heima"`
	Semantics bool   `json:"semantics" example:"false"`
}

type SymbolsResponse struct {
	Symbols map[string]string `json:"symbols"`
}

type SymbolResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type AnalyzeRouter struct {
	e       *echo.Echo
	service *analysis.Service
}

func NewAnalyzeRouter(e *echo.Echo, service *analysis.Service) *AnalyzeRouter {
	return &AnalyzeRouter{
		e:       e,
		service: service,
	}
}

func (r *AnalyzeRouter) Bind() {
	r.e.POST("/analyze", r.analyzeHandler)
	r.e.GET("/symbols", r.symbolsHandler)
	r.e.GET("/symbols/:name", r.symbolHandler)
}

// analyzeHandler godoc
// @Summary Analyze a sentence
// @Description Tokenizes the text and checks it against the Subject-Verb-Object grammar. With semantics enabled, Subject = Number assignments are accepted and recorded in the symbol table.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Sentence to analyze"
// @Success 200 {object} analysis.Result
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 500 {object} apperr.ErrorResponse
// @Router /analyze [post]
func (r *AnalyzeRouter) analyzeHandler(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	mode := analysis.ModeGrammar
	if req.Semantics {
		mode = analysis.ModeFull
	}

	res, err := r.service.Analyze(c.Request().Context(), req.Text, mode)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

// symbolsHandler godoc
// @Summary List symbols
// @Description Returns every subject with the last number assigned to it.
// @Tags symbols
// @Produce json
// @Success 200 {object} SymbolsResponse
// @Failure 500 {object} apperr.ErrorResponse
// @Router /symbols [get]
func (r *AnalyzeRouter) symbolsHandler(c echo.Context) error {
	entries, err := r.service.Symbols(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SymbolsResponse{Symbols: entries})
}

// symbolHandler godoc
// @Summary Get a symbol
// @Tags symbols
// @Produce json
// @Param name path string true "Subject name" example(Eg)
// @Success 200 {object} SymbolResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /symbols/{name} [get]
func (r *AnalyzeRouter) symbolHandler(c echo.Context) error {
	// echo hands over the raw segment when the request path is not in canonical escaped form.
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return apperr.NewValidationWrap("invalid symbol name", err)
	}

	value, err := r.service.Symbol(c.Request().Context(), name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SymbolResponse{Name: name, Value: value})
}
