package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SocioProphet/zenflows/internal/data/repos"
	"github.com/SocioProphet/zenflows/internal/pkg/ctxutil"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/api/resources?"+rawQuery, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	c.Request = req
	return c
}

func TestParseResourceQueryFilters(t *testing.T) {
	agentID := uuid.New()
	specID := uuid.New()
	c := testContext(t,
		"classified_as=vf%3Aapple&classified_as=vf%3Afruit"+
			"&custodian="+agentID.String()+
			"&conforms_to="+specID.String()+
			"&limit=10&cursor=")

	q, err := parseResourceQuery(c)
	if err != nil {
		t.Fatalf("parseResourceQuery: %v", err)
	}
	if q.Filter == nil {
		t.Fatal("expected a filter")
	}
	if len(q.Filter.ClassifiedAs) != 2 || q.Filter.ClassifiedAs[0] != "vf:apple" {
		t.Errorf("classified_as: got %v", q.Filter.ClassifiedAs)
	}
	if len(q.Filter.Custodian) != 1 || q.Filter.Custodian[0] != agentID {
		t.Errorf("custodian: got %v", q.Filter.Custodian)
	}
	if len(q.Filter.ConformsTo) != 1 || q.Filter.ConformsTo[0] != specID {
		t.Errorf("conforms_to: got %v", q.Filter.ConformsTo)
	}
	if q.Page.Limit != 10 {
		t.Errorf("limit: got %d", q.Page.Limit)
	}
}

func TestParseResourceQueryIgnoresUnknownParams(t *testing.T) {
	c := testContext(t, "nonsense=1&also_unknown=abc")

	q, err := parseResourceQuery(c)
	if err != nil {
		t.Fatalf("parseResourceQuery: %v", err)
	}
	if q.Filter != nil {
		t.Errorf("unknown params must not produce a filter, got %+v", q.Filter)
	}
}

func TestParseResourceQueryRejectsMalformedValues(t *testing.T) {
	if _, err := parseResourceQuery(testContext(t, "custodian=not-a-uuid")); err == nil {
		t.Error("bad custodian uuid: expected error")
	}
	if _, err := parseResourceQuery(testContext(t, "limit=ten")); err == nil {
		t.Error("bad limit: expected error")
	}
	if _, err := parseResourceQuery(testContext(t, "cursor=%21%21%21")); err == nil {
		t.Error("bad cursor: expected error")
	}
	if _, err := parseResourceQuery(testContext(t, "cursor=bm90LWEtY3Vyc29y")); err == nil {
		t.Error("cursor without separator: expected error")
	}
}

func TestParsePageParams(t *testing.T) {
	p, err := parsePageParams(testContext(t, "limit=25"))
	if err != nil {
		t.Fatalf("parsePageParams: %v", err)
	}
	if p.Limit != 25 || p.Cursor != "" {
		t.Errorf("got %+v", p)
	}
	if _, err := parsePageParams(testContext(t, "cursor=%21%21%21")); err == nil {
		t.Error("bad cursor: expected error")
	}
}

func TestParseInclude(t *testing.T) {
	rels := parseInclude("custodian, conforms_to,no_such_relation,state")
	want := []repos.Relation{repos.RelCustodian, repos.RelConformsTo, repos.RelState}
	if len(rels) != len(want) {
		t.Fatalf("got %v, want %v", rels, want)
	}
	for i := range want {
		if rels[i] != want[i] {
			t.Errorf("rels[%d]: got %v, want %v", i, rels[i], want[i])
		}
	}

	if rels := parseInclude(""); rels != nil {
		t.Errorf("empty include: got %v", rels)
	}
}

func TestActingAgentID(t *testing.T) {
	if got := actingAgentID(context.Background()); got != nil {
		t.Errorf("no identity: got %v", got)
	}

	agentID := uuid.New()
	ctx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{AgentID: agentID})
	got := actingAgentID(ctx)
	if got == nil || *got != agentID {
		t.Errorf("got %v, want %s", got, agentID)
	}

	nilCtx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{})
	if got := actingAgentID(nilCtx); got != nil {
		t.Errorf("nil agent id: got %v", got)
	}
}

func TestParseIncludeCollapsesRepeats(t *testing.T) {
	rels := parseInclude("state,state,custodian,custodian,state")
	want := []repos.Relation{repos.RelState, repos.RelCustodian}
	if len(rels) != len(want) {
		t.Fatalf("got %v, want %v", rels, want)
	}
	for i := range want {
		if rels[i] != want[i] {
			t.Errorf("rels[%d]: got %v, want %v", i, rels[i], want[i])
		}
	}
}
