package httpserver

import (
	"bulletin/domain/entities"
	"bulletin/domain/services"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mailru/easyjson"
	"github.com/pkg/errors"
	router "github.com/xandalm/go-router"
)

const (
	JSONContentType            = "application/json"
	RequestIdHeader            = "X-Request-Id"
	HealthStatusOK             = "ok"
	PostDeletedMessage         = "Post deleted"
	ErrPostNotFoundMessage     = "Post not found"
	ErrInvalidPostIdMessage    = "post id must be an integer"
	ErrUnsupportedPostMessage  = "unsupported data to parse into post"
	ErrMethodNotAllowedMessage = "Method Not Allowed"
)

const postsPath = "/api/posts"

type Server struct {
	storage services.Storage
	router  *router.Router
	logger  *log.Logger
}

func NewServer(storage services.Storage) *Server {
	s := &Server{
		storage: storage,
		router:  &router.Router{},
		logger:  log.Default(),
	}

	s.router.GetFunc(postsPath+"/{id}", s.getPostHandler)
	s.router.DeleteFunc(postsPath+"/{id}", s.deletePostHandler)
	s.router.GetFunc(postsPath, s.getPostsHandler)
	s.router.PostFunc(postsPath, s.storePostHandler)
	s.router.GetFunc("/api/health", s.healthHandler)

	return s
}

// SetLogger replaces the request logger. A nil logger discards output.
func (s *Server) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s.logger = logger
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	requestId := r.Header.Get(RequestIdHeader)
	if requestId == "" {
		requestId = uuid.NewString()
	}
	w.Header().Set(RequestIdHeader, requestId)
	w.Header().Set("Content-Type", JSONContentType)

	rec := &statusRecorder{w, http.StatusOK}
	if allowed := allowedMethods(r.URL.Path); allowed != nil && !contains(allowed, r.Method) {
		rec.Header().Set("Allow", strings.Join(allowed, ", "))
		rec.WriteHeader(http.StatusMethodNotAllowed)
		toJSON(rec, NewError(ErrMethodNotAllowedMessage))
	} else {
		s.router.ServeHTTP(rec, r)
	}

	s.logger.Printf("%s %s %s %d %s", requestId, r.Method, r.URL.Path, rec.status, time.Since(start))
}

// allowedMethods returns nil for paths that no route serves, leaving
// them to the router's 404.
func allowedMethods(path string) []string {
	switch {
	case path == postsPath:
		return []string{http.MethodGet, http.MethodPost}
	case path == "/api/health":
		return []string{http.MethodGet}
	case strings.HasPrefix(path, postsPath+"/"):
		if id := strings.TrimPrefix(path, postsPath+"/"); id != "" && !strings.Contains(id, "/") {
			return []string{http.MethodGet, http.MethodDelete}
		}
	}
	return nil
}

func contains(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}

func (s *Server) getPostsHandler(w router.ResponseWriter, r *router.Request) {
	w.WriteHeader(http.StatusOK)
	toJSON(w, &PostsResponse{Posts: s.storage.GetPosts()})
}

func (s *Server) getPostHandler(w router.ResponseWriter, r *router.Request) {
	postId, ok := s.parsePostId(w, r)
	if !ok {
		return
	}

	foundPost, err := s.storage.GetPost(postId)
	if err != nil {
		s.writeStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	toJSON(w, foundPost)
}

func (s *Server) storePostHandler(w router.ResponseWriter, r *router.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		toJSON(w, NewError(ErrUnsupportedPostMessage))
		return
	}

	input, err := entities.DecodePostInput(data)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		toJSON(w, NewError(ErrUnsupportedPostMessage+": "+err.Error()))
		return
	}

	post, err := s.storage.StorePost(input)
	if err != nil {
		s.writeStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	toJSON(w, post)
}

func (s *Server) deletePostHandler(w router.ResponseWriter, r *router.Request) {
	postId, ok := s.parsePostId(w, r)
	if !ok {
		return
	}

	deleted, err := s.storage.DeletePost(postId)
	if err != nil {
		s.writeStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	toJSON(w, &DeleteResponse{
		Message: PostDeletedMessage,
		Post:    *deleted,
	})
}

func (s *Server) healthHandler(w router.ResponseWriter, r *router.Request) {
	w.WriteHeader(http.StatusOK)
	toJSON(w, &HealthResponse{
		Status:     HealthStatusOK,
		TotalPosts: s.storage.CountPosts(),
	})
}

func (s *Server) parsePostId(w router.ResponseWriter, r *router.Request) (int64, bool) {
	postId, err := strconv.ParseInt(r.Params()["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		toJSON(w, NewError(ErrInvalidPostIdMessage))
		return 0, false
	}
	return postId, true
}

func (s *Server) writeStorageError(w router.ResponseWriter, err error) {
	if errors.Cause(err) == services.ErrPostNotFound {
		w.WriteHeader(http.StatusNotFound)
		toJSON(w, NewError(ErrPostNotFoundMessage))
		return
	}
	s.logger.Printf("storage failure: %v", err)
	w.WriteHeader(http.StatusInternalServerError)
}

func toJSON(w io.Writer, v easyjson.Marshaler) error {
	_, err := easyjson.MarshalToWriter(v, w)
	return err
}
