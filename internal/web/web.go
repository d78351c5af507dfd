package web

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"webcalc/internal/calculator"
)

//go:embed templates/index.html
var indexHTML string

//go:embed static
var staticFiles embed.FS

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	A          string
	B          string
	Result     string
	Operations []calculator.Operation
}

// RenderResult - текст для области результата при успешном вычислении
func RenderResult(v float64) string {
	return "Calculation Result: " + calculator.FormatResult(v)
}

// RenderError - текст для области результата при ошибке
func RenderError(err error) string {
	return "Error: " + err.Error()
}

// NewRouter обслуживает страницу калькулятора и ее статические файлы.
// POST / считает без JavaScript и отдает ту же страницу с результатом.
func NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", IndexHandler).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/", SubmitHandler).Methods(http.MethodPost)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r
}

func IndexHandler(w http.ResponseWriter, r *http.Request) {
	renderPage(w, pageData{})
}

func SubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	data := pageData{
		A: r.PostFormValue("a"),
		B: r.PostFormValue("b"),
	}

	result, err := calculator.EvaluateNamed(r.PostFormValue("operation"), data.A, data.B)
	if err != nil {
		data.Result = RenderError(err)
	} else {
		data.Result = RenderResult(result)
	}

	renderPage(w, data)
}

func renderPage(w http.ResponseWriter, data pageData) {
	data.Operations = calculator.Operations()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("Ошибка отрисовки страницы: %v", err)
	}
}
