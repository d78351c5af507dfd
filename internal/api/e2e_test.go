//go:build e2e

package api

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
)

// newBrowser поднимает headless Chrome и сервер калькулятора
func newBrowser(t *testing.T) (context.Context, string) {
	t.Helper()

	srv := httptest.NewServer(newTestRouter())
	t.Cleanup(srv.Close)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-gpu", true),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	ctx, cancel := context.WithTimeout(browserCtx, 60*time.Second)

	t.Cleanup(func() {
		cancel()
		browserCancel()
		allocCancel()
	})

	return ctx, srv.URL
}

func button(label string) string {
	return fmt.Sprintf(`//button[normalize-space(text())=%q]`, label)
}

// waitForText ждет, пока текст #result станет равен want
func waitForText(t *testing.T, ctx context.Context, want string) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	var got string
	for time.Now().Before(deadline) {
		if err := chromedp.Run(ctx, chromedp.Evaluate(`document.querySelector('#result').textContent`, &got)); err != nil {
			t.Fatalf("чтение #result: %v", err)
		}
		if got == want {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("#result = %q, ожидается %q", got, want)
}

func calculate(t *testing.T, ctx context.Context, a, b, label string) {
	t.Helper()
	err := chromedp.Run(ctx,
		chromedp.SetValue("#a", a, chromedp.ByQuery),
		chromedp.SetValue("#b", b, chromedp.ByQuery),
		chromedp.Click(button(label), chromedp.BySearch),
	)
	if err != nil {
		t.Fatalf("ввод %s %s %s: %v", a, label, b, err)
	}
}

func TestE2EHomepage(t *testing.T) {
	ctx, url := newBrowser(t)

	var h1, h2 string
	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.Text("h1", &h1, chromedp.ByQuery),
		chromedp.Text("h2", &h2, chromedp.ByQuery),
		chromedp.WaitVisible("#a", chromedp.ByQuery),
		chromedp.WaitVisible("#b", chromedp.ByQuery),
		chromedp.WaitVisible(button("Add"), chromedp.BySearch),
		chromedp.WaitVisible(button("Subtract"), chromedp.BySearch),
		chromedp.WaitVisible(button("Multiply"), chromedp.BySearch),
		chromedp.WaitVisible(button("Divide"), chromedp.BySearch),
		chromedp.WaitVisible("#result", chromedp.ByQuery),
	)
	if err != nil {
		t.Fatalf("загрузка страницы: %v", err)
	}

	if h1 != "Hello World" {
		t.Errorf("h1 = %q", h1)
	}
	if h2 != "Calculator" {
		t.Errorf("h2 = %q", h2)
	}
	waitForText(t, ctx, "")
}

func TestE2ECalculator(t *testing.T) {
	ctx, url := newBrowser(t)
	if err := chromedp.Run(ctx, chromedp.Navigate(url), chromedp.WaitVisible("#result", chromedp.ByQuery)); err != nil {
		t.Fatalf("загрузка страницы: %v", err)
	}

	// Шаги выполняются на одной странице, как это делает пользователь
	steps := []struct {
		name  string
		a, b  string
		label string
		want  string
	}{
		{"сложение", "10", "5", "Add", "Calculation Result: 15"},
		{"вычитание", "20", "7", "Subtract", "Calculation Result: 13"},
		{"умножение", "6", "4", "Multiply", "Calculation Result: 24"},
		{"деление", "100", "25", "Divide", "Calculation Result: 4"},
		{"деление на ноль", "10", "0", "Divide", "Error: Cannot divide by zero!"},
		{"сложение дробных", "7.5", "2.5", "Add", "Calculation Result: 10"},
		{"дробный результат деления", "7", "2", "Divide", "Calculation Result: 3.5"},
		{"дробный результат умножения", "2.5", "3", "Multiply", "Calculation Result: 7.5"},
		{"дробный результат вычитания", "10", "2.75", "Subtract", "Calculation Result: 7.25"},
	}

	for _, s := range steps {
		t.Run(s.name, func(t *testing.T) {
			calculate(t, ctx, s.a, s.b, s.label)
			waitForText(t, ctx, s.want)
		})
	}
}

func TestE2EInvalidInput(t *testing.T) {
	ctx, url := newBrowser(t)

	// Значение ставится скриптом в обход проверки type="number"
	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitVisible("#a", chromedp.ByQuery),
		chromedp.Evaluate(`document.getElementById('a').value = 'abc'`, nil),
		chromedp.Evaluate(`document.getElementById('b').value = '5'`, nil),
		chromedp.Click(button("Add"), chromedp.BySearch),
	)
	if err != nil {
		t.Fatalf("ввод: %v", err)
	}

	waitForText(t, ctx, "Error: a: Input should be a valid number")
}
