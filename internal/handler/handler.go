package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/Dan9191/calculator-service/internal/service"
	"github.com/sirupsen/logrus"
)

// Handler exposes the HTTP surface over the service layer
type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

const indexPage = `<!DOCTYPE html>
<html>
  <head>
    <title>Calculator</title>
  </head>
  <body>
    <h1>Hello Go!!</h1>
    <p>This is a calculator, served via net/http.</p>
  </body>
</html>`

// Index serves the landing page
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user authentication and token issuance
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.loginRejected(w)
		return
	}

	token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		h.loginRejected(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
	})
}

func (h *Handler) loginRejected(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
		"success": false,
		"message": "Invalid email or password",
	})
}

// Protected confirms token-gated access
func (h *Handler) Protected(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "You have access to protected content!",
	})
}

// Add handles the addition route
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	a, b, err := h.operands(r)
	if err != nil {
		h.invalidInput(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"result": h.svc.Add(a, b)})
}

// Subtract handles the subtraction route
func (h *Handler) Subtract(w http.ResponseWriter, r *http.Request) {
	a, b, err := h.operands(r)
	if err != nil {
		h.invalidInput(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"result": h.svc.Subtract(a, b)})
}

// Multiply handles the multiplication route
func (h *Handler) Multiply(w http.ResponseWriter, r *http.Request) {
	a, b, err := h.operands(r)
	if err != nil {
		h.invalidInput(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"result": h.svc.Multiply(a, b)})
}

// Divide handles the division route
func (h *Handler) Divide(w http.ResponseWriter, r *http.Request) {
	a, b, err := h.operands(r)
	if err != nil {
		h.invalidInput(w)
		return
	}

	result, err := h.svc.Divide(a, b)
	if err != nil {
		h.log.Error("Attempted to divide by zero")
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Cannot divide by zero"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"result": result})
}

func (h *Handler) invalidInput(w http.ResponseWriter) {
	h.log.Error("Invalid input parameters")
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Invalid input parameters"})
}

// operand accepts a JSON number or a numeric string, since clients send
// calculator input either way. Anything that does not parse to a finite
// number stays invalid.
type operand struct {
	value float64
	valid bool
}

func (o *operand) UnmarshalJSON(data []byte) error {
	// json.Unmarshal leaves a float64 untouched for the literal null, which
	// would read as a valid 0
	if string(data) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		o.value = n
		o.valid = !math.IsNaN(n) && !math.IsInf(n, 0)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		o.value = n
		o.valid = true
	}
	return nil
}

type calcRequest struct {
	Num1 operand `json:"num1"`
	Num2 operand `json:"num2"`
}

// operands runs the shared pre-check for all four arithmetic routes
func (h *Handler) operands(r *http.Request) (float64, float64, error) {
	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, 0, service.ErrInvalidInput
	}
	if !req.Num1.valid || !req.Num2.valid {
		return 0, 0, service.ErrInvalidInput
	}
	return req.Num1.value, req.Num2.value, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
