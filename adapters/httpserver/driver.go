package httpserver

import (
	"bulletin/domain/entities"
	"bulletin/domain/services"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mailru/easyjson"
	"github.com/pkg/errors"
)

type Args map[string]any

func (a Args) Get(names ...string) map[string]any {
	res := make(map[string]any)
	for _, name := range names {
		if v, ok := a[name]; ok {
			res[name] = v
		}
	}
	return res
}

var ErrMalformedArg = errors.New("argument must be `name: value` pattern")

// ParseArgs reads `name: value` pairs. Only the first colon separates,
// so values may contain colons.
func ParseArgs(args ...string) (Args, error) {
	res := make(Args, len(args))
	for _, arg := range args {
		name, value, found := strings.Cut(arg, ":")
		if !found {
			return nil, errors.Wrapf(ErrMalformedArg, "%q", arg)
		}
		res[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return res, nil
}

// Driver talks to a running server over HTTP.
type Driver struct {
	BaseURL string
	Client  *http.Client
}

func (d *Driver) CreateAPost(args ...string) (*entities.Post, error) {
	parsed, err := ParseArgs(args...)
	if err != nil {
		return nil, err
	}
	requiredArgs := parsed.Get("title", "content", "author")
	if len(requiredArgs) != 3 {
		return nil, fmt.Errorf("missing required args")
	}
	title, _ := requiredArgs["title"].(string)
	content, _ := requiredArgs["content"].(string)
	author, _ := requiredArgs["author"].(string)

	body, err := easyjson.Marshal(entities.NewPostInput(author, title, content))
	if err != nil {
		return nil, err
	}

	var post entities.Post
	if err := d.do(http.MethodPost, "/api/posts", bytes.NewReader(body), http.StatusCreated, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (d *Driver) ListPosts() ([]entities.Post, error) {
	var res PostsResponse
	if err := d.do(http.MethodGet, "/api/posts", nil, http.StatusOK, &res); err != nil {
		return nil, err
	}
	return res.Posts, nil
}

func (d *Driver) GetPost(id int64) (*entities.Post, error) {
	var post entities.Post
	if err := d.do(http.MethodGet, postPath(id), nil, http.StatusOK, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (d *Driver) DeletePost(id int64) (*entities.Post, error) {
	var res DeleteResponse
	if err := d.do(http.MethodDelete, postPath(id), nil, http.StatusOK, &res); err != nil {
		return nil, err
	}
	if res.Message != PostDeletedMessage {
		return nil, fmt.Errorf("unexpected delete message %q", res.Message)
	}
	return &res.Post, nil
}

func (d *Driver) CountPosts() (int, error) {
	var res HealthResponse
	if err := d.do(http.MethodGet, "/api/health", nil, http.StatusOK, &res); err != nil {
		return 0, err
	}
	if res.Status != HealthStatusOK {
		return 0, fmt.Errorf("unexpected health status %q", res.Status)
	}
	return res.TotalPosts, nil
}

func postPath(id int64) string {
	return fmt.Sprintf("/api/posts/%d", id)
}

// do maps a 404 to services.ErrPostNotFound so specifications can check
// it the same way against any driver.
func (d *Driver) do(method, path string, body io.Reader, wantStatus int, v easyjson.Unmarshaler) error {
	req, err := http.NewRequest(method, d.BaseURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", JSONContentType)
	}

	res, err := d.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode == http.StatusNotFound {
		return errors.Wrapf(services.ErrPostNotFound, "%s %s", method, path)
	}
	if res.StatusCode != wantStatus {
		return fmt.Errorf("%s %s: got status %d, want %d: %s", method, path, res.StatusCode, wantStatus, data)
	}
	return easyjson.Unmarshal(data, v)
}
