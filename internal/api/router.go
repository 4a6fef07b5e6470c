package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nileshd/newsguard/internal/classifier"
	"github.com/nileshd/newsguard/internal/collector"
	"github.com/nileshd/newsguard/internal/logger"
	"github.com/nileshd/newsguard/internal/storage"
	"github.com/nileshd/newsguard/internal/verify"
)

const searchTimeout = 20 * time.Second

// Server holds the HTTP surface over the published snapshot, the classifier
// and the verification service.
type Server struct {
	store       *storage.Store
	clf         *classifier.Classifier
	verifier    *verify.Service
	extractor   verify.TextExtractor
	searchCache *storage.SearchCache
	images      *collector.ImageResolver
	refresh     func()
}

// Options carries the optional collaborators; nil fields disable the
// corresponding feature.
type Options struct {
	Extractor   verify.TextExtractor
	SearchCache *storage.SearchCache
	Refresh     func()
}

func NewServer(store *storage.Store, clf *classifier.Classifier, verifier *verify.Service, opts Options) *Server {
	return &Server{
		store:       store,
		clf:         clf,
		verifier:    verifier,
		extractor:   opts.Extractor,
		searchCache: opts.SearchCache,
		images:      collector.NewImageResolver(),
		refresh:     opts.Refresh,
	}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)
	r.GET("/news", s.listNews)
	r.GET("/search", s.searchNews)
	r.POST("/predict", s.predict)
	r.POST("/verify-ocr", s.verifyOCR)
	r.POST("/refresh", s.refreshNow)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listNews serves the current snapshot as a bare JSON array. Before the
// first publication a single placeholder article keeps clients rendering.
func (s *Server) listNews(c *gin.Context) {
	articles := s.store.Articles()
	if len(articles) == 0 {
		c.JSON(http.StatusOK, []collector.Article{placeholderArticle()})
		return
	}
	c.JSON(http.StatusOK, articles)
}

func placeholderArticle() collector.Article {
	art := collector.Article{
		Title:       "No News Data Available",
		Link:        "#",
		Summary:     "The service is running but no snapshot has been published yet. Articles will appear after the first collection cycle completes.",
		PublishedAt: time.Now(),
		Source:      "System",
	}
	art.SetAssessment(classifier.Assessment{Label: classifier.LabelNeutral, Confidence: 0})
	return art
}

// searchNews runs an ad hoc topic query against the search feed. Results
// are classified like any cycle but never merged into the snapshot.
func (s *Server) searchNews(c *gin.Context) {
	topic := c.Query("q")
	if topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), searchTimeout)
	defer cancel()

	if cached, ok := s.searchCache.Get(ctx, topic); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	fetcher := collector.NewTopicSearchFetcher(topic, s.images)
	articles, err := fetcher.Fetch(ctx)
	if err != nil {
		logger.Warnf("topic search %q failed: %v", topic, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "topic search failed"})
		return
	}

	for i := range articles {
		a := &articles[i]
		a.SetAssessment(s.clf.ClassifyArticle(ctx, a.Source, a.Title, a.Summary))
	}

	s.searchCache.Set(ctx, topic, articles)
	c.JSON(http.StatusOK, articles)
}

type predictRequest struct {
	Text string `json:"text"`
}

// predict classifies a raw text snippet in sentence mode.
func (s *Server) predict(c *gin.Context) {
	var req predictRequest
	if c.ContentType() == "application/json" {
		_ = c.ShouldBindJSON(&req)
	} else {
		req.Text = c.PostForm("text")
	}
	if req.Text == "" {
		req.Text = c.Query("text")
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	assessment := s.clf.ClassifyText(c.Request.Context(), req.Text)
	c.JSON(http.StatusOK, assessment)
}

// verifyOCR receives an image, delegates text extraction to the external
// collaborator and runs the verification service on the result.
func (s *Server) verifyOCR(c *gin.Context) {
	if s.extractor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "OCR system is unavailable on this server"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	defer f.Close()

	text, err := s.extractor.Extract(c.Request.Context(), fh.Filename, f)
	if err != nil {
		logger.Warnf("text extraction failed: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "text extraction failed", "detail": err.Error()})
		return
	}

	result := s.verifier.Verify(c.Request.Context(), text)
	c.JSON(http.StatusOK, result)
}

// refreshNow triggers one synchronous collection cycle.
func (s *Server) refreshNow(c *gin.Context) {
	if s.refresh == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "refresh is not available"})
		return
	}
	s.refresh()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "articles": len(s.store.Articles())})
}
