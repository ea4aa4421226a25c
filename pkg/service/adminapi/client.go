package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
)

// DefaultTimeout bounds every admin API request
const DefaultTimeout = 30 * time.Second

const (
	listUsersPath     = "/admin/api/Users/ListUsers"
	assignLicensePath = "/admin/api/users/%s/assignlicense"
	officeInstallPath = "/admin/api/users/%s/officeInstalls"
)

// creationParamMessage replaces the upstream message for Code 406
const creationParamMessage = "request parameters are invalid or incomplete (code 406)"

// Captured headers that must not be replayed; the transport sets them itself.
var skippedHeaders = map[string]bool{
	"cookie":          true,
	"content-length":  true,
	"accept-encoding": true,
	"host":            true,
}

// Client talks to the tenant administration portal with a replayed browser session
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures Client
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// New creates a new admin API client
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listUsersRequest struct {
	ListAction       int           `json:"ListAction"`
	SortDirection    int           `json:"SortDirection"`
	ListContext      any           `json:"ListContext"`
	SortPropertyName string        `json:"SortPropertyName"`
	SearchText       string        `json:"SearchText"`
	SelectedView     string        `json:"SelectedView"`
	SelectedViewType string        `json:"SelectedViewType"`
	ServerContext    any           `json:"ServerContext"`
	MSGraphFilter    msGraphFilter `json:"MSGraphFilter"`
}

type msGraphFilter struct {
	SkuIDs    []string `json:"skuIds"`
	Locations []string `json:"locations"`
	Domains   []string `json:"domains"`
}

type listUsersResponse struct {
	Users    []upstreamUser `json:"Users"`
	MetaData struct {
		DataCount  *int  `json:"DataCount"`
		IsLastPage *bool `json:"IsLastPage"`
	} `json:"MetaData"`
}

type upstreamUser struct {
	ObjectID          flexString `json:"ObjectId"`
	DisplayName       flexString `json:"DisplayName"`
	UserPrincipalName flexString `json:"UserPrincipalName"`
	Mail              flexString `json:"Mail"`
	Licenses          flexString `json:"Licenses"`
	HasLicense        bool       `json:"HasLicense"`
	SigninStatus      flexString `json:"SigninStatus"`
	CreatedTime       flexString `json:"CreatedTime"`
	UsageLocation     flexString `json:"UsageLocation"`
	FirstName         flexString `json:"FirstName"`
	LastName          flexString `json:"LastName"`
	JobTitle          flexString `json:"JobTitle"`
	Department        flexString `json:"Department"`
	MobilePhone       flexString `json:"MobilePhone"`
	BusinessPhones    flexString `json:"BusinessPhones"`
}

func (u upstreamUser) record() model.UserRecord {
	return model.UserRecord{
		ObjectID:          types.ObjectID(u.ObjectID),
		DisplayName:       string(u.DisplayName),
		UserPrincipalName: string(u.UserPrincipalName),
		Email:             string(u.Mail),
		Licenses:          string(u.Licenses),
		HasLicense:        u.HasLicense,
		SigninStatus:      string(u.SigninStatus),
		CreatedTime:       string(u.CreatedTime),
		UsageLocation:     string(u.UsageLocation),
		FirstName:         string(u.FirstName),
		LastName:          string(u.LastName),
		JobTitle:          string(u.JobTitle),
		Department:        string(u.Department),
		MobilePhone:       string(u.MobilePhone),
		BusinessPhones:    string(u.BusinessPhones),
	}
}

type createUserRequest struct {
	FirstName               string            `json:"FirstName"`
	JobTitle                string            `json:"JobTitle"`
	LastName                string            `json:"LastName"`
	DisplayName             string            `json:"DisplayName"`
	UserPrincipalName       string            `json:"UserPrincipalName"`
	Office                  string            `json:"Office"`
	OfficePhone             string            `json:"OfficePhone"`
	MobilePhone             string            `json:"MobilePhone"`
	FaxNumber               string            `json:"FaxNumber"`
	City                    string            `json:"City"`
	CountryRegion           string            `json:"CountryRegion"`
	StateProvince           string            `json:"StateProvince"`
	Department              string            `json:"Department"`
	StreetAddress           string            `json:"StreetAddress"`
	ZipOrPostalCode         string            `json:"ZipOrPostalCode"`
	ForceChangePassword     bool              `json:"ForceChangePassword"`
	SendPasswordEmail       bool              `json:"SendPasswordEmail"`
	Password                string            `json:"Password"`
	AdminRoles              []json.RawMessage `json:"AdminRoles"`
	UsageLocation           string            `json:"UsageLocation"`
	Products                []json.RawMessage `json:"Products"`
	CreateUserWithNoLicense bool              `json:"CreateUserWithNoLicense"`
}

type createUserResponse struct {
	Status   *int       `json:"Status"`
	Code     flexString `json:"Code"`
	Message  flexString `json:"Message"`
	UserInfo struct {
		ObjectID    flexString `json:"ObjectId"`
		DisplayName flexString `json:"DisplayName"`
		Licenses    flexString `json:"Licenses"`
	} `json:"UserInfo"`
}

type assignLicenseRequest struct {
	AddLicenses    []addLicense `json:"AddLicenses"`
	RemoveLicenses []string     `json:"RemoveLicenses"`
}

type addLicense struct {
	SkuID                string   `json:"SkuId"`
	DisabledServicePlans []string `json:"DisabledServicePlans"`
}

// ListUsers lists directory users matching searchText with a single upstream call
func (c *Client) ListUsers(ctx context.Context, sub *model.Subscription, searchText string) (page *model.UserPage, err error) {
	defer recoverFailure(ctx, "ListUsers", &err)

	cfg, baseURL, err := userManagement(sub)
	if err != nil {
		return nil, err
	}
	creds, err := ResolveCredentials(ctx, sub, cfg, true)
	if err != nil {
		return nil, err
	}

	req := listUsersRequest{
		ListAction:       -1,
		SortDirection:    0,
		SortPropertyName: "DisplayName",
		SearchText:       searchText,
		MSGraphFilter: msGraphFilter{
			SkuIDs:    []string{},
			Locations: []string{},
			Domains:   []string{},
		},
	}

	body, err := c.do(ctx, "ListUsers", http.MethodPost, baseURL+listUsersPath, creds, req, acceptRead)
	if err != nil {
		return nil, err
	}

	var resp listUsersResponse
	if err := decodeResponse(body, &resp); err != nil {
		return nil, err
	}

	users := make([]model.UserRecord, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, u.record())
	}

	page = &model.UserPage{
		Users:      users,
		TotalCount: len(users),
		IsLastPage: true,
	}
	if resp.MetaData.DataCount != nil {
		page.TotalCount = *resp.MetaData.DataCount
	}
	if resp.MetaData.IsLastPage != nil {
		page.IsLastPage = *resp.MetaData.IsLastPage
	}

	ctxlog.From(ctx).Debug("Listed users",
		"subscription", sub.ID,
		"count", len(users),
		"total", page.TotalCount)
	return page, nil
}

// CreateUser provisions an account using the captured creation request as the template
func (c *Client) CreateUser(ctx context.Context, sub *model.Subscription, username, password string) (created *model.CreatedUser, err error) {
	defer recoverFailure(ctx, "CreateUser", &err)

	cfg, _, err := userManagement(sub)
	if err != nil {
		return nil, err
	}
	if !sub.HasCapture() {
		return nil, model.NewFailure(model.KindTemplateMissing,
			"no user creation curl command is configured",
			goerr.V("subscription", sub.ID))
	}
	creds, err := ResolveCredentials(ctx, sub, cfg, true)
	if err != nil {
		return nil, err
	}
	tmpl, err := ExtractTemplate(ctx, sub.UserCreateCurl)
	if err != nil {
		return nil, err
	}

	upn := username + "@" + tmpl.Domain()
	req := createUserRequest{
		FirstName:               tmpl.FirstName,
		JobTitle:                tmpl.JobTitle,
		LastName:                tmpl.LastName,
		DisplayName:             username,
		UserPrincipalName:       upn,
		Office:                  tmpl.Office,
		OfficePhone:             tmpl.OfficePhone,
		MobilePhone:             tmpl.MobilePhone,
		FaxNumber:               tmpl.FaxNumber,
		City:                    tmpl.City,
		CountryRegion:           tmpl.CountryRegion,
		StateProvince:           tmpl.StateProvince,
		Department:              tmpl.Department,
		StreetAddress:           tmpl.StreetAddress,
		ZipOrPostalCode:         tmpl.ZipOrPostalCode,
		ForceChangePassword:     true,
		SendPasswordEmail:       false,
		Password:                password,
		AdminRoles:              nonNilRaw(tmpl.AdminRoles),
		UsageLocation:           tmpl.EffectiveUsageLocation(),
		Products:                nonNilRaw(tmpl.Products),
		CreateUserWithNoLicense: tmpl.CreateUserWithNoLicense,
	}

	licenses := tmpl.LicenseNames()
	ctxlog.From(ctx).Info("Creating user",
		"subscription", sub.ID,
		"user_principal_name", upn,
		"licenses", licenses)

	body, err := c.do(ctx, "CreateUser", http.MethodPost, cfg.APIURL, creds, req, acceptRead)
	if err != nil {
		return nil, err
	}

	var resp createUserResponse
	if err := decodeResponse(body, &resp); err != nil {
		return nil, err
	}

	if resp.Status == nil || *resp.Status != 0 {
		code := string(resp.Code)
		if code == "" {
			code = "unknown"
		}
		msg := string(resp.Message)
		if msg == "" {
			msg = "user creation failed with code " + code
		}
		if code == "406" {
			msg = creationParamMessage
		}
		options := []goerr.Option{
			goerr.V(model.KeyCode, code),
			goerr.V("user_principal_name", upn),
		}
		if resp.Status != nil {
			options = append(options, goerr.V("upstream_status", *resp.Status))
		}
		return nil, model.NewFailure(model.KindCreationFailed, msg, options...)
	}

	displayName := string(resp.UserInfo.DisplayName)
	if displayName == "" {
		displayName = username
	}

	return &model.CreatedUser{
		Username:          username,
		UserPrincipalName: upn,
		DisplayName:       displayName,
		ObjectID:          types.ObjectID(resp.UserInfo.ObjectID),
		Password:          password,
		Licenses:          licenses,
		LicensesInfo:      string(resp.UserInfo.Licenses),
	}, nil
}

// AssignLicense grants the first SKU with free seats to the user
func (c *Client) AssignLicense(ctx context.Context, sub *model.Subscription, objectID types.ObjectID) (assigned *model.AssignedLicense, err error) {
	defer recoverFailure(ctx, "AssignLicense", &err)

	_, baseURL, err := userManagement(sub)
	if err != nil {
		return nil, err
	}

	sku := sub.FirstAvailableSku()
	if sku == nil {
		return nil, model.NewFailure(model.KindNoLicenseAvailable,
			"no license with available seats in subscription",
			goerr.V("subscription", sub.ID),
			goerr.V("skus", len(sub.SubscriptionData.Skus)))
	}

	creds, err := ResolveCredentials(ctx, sub, sub.UserCreateConfig, true)
	if err != nil {
		return nil, err
	}

	req := assignLicenseRequest{
		AddLicenses: []addLicense{
			{SkuID: sku.SkuID, DisabledServicePlans: []string{}},
		},
		RemoveLicenses: []string{},
	}

	target := baseURL + fmt.Sprintf(assignLicensePath, url.PathEscape(objectID.String()))
	if _, err := c.do(ctx, "AssignLicense", http.MethodPost, target, creds, req, acceptAssign); err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Info("License assigned",
		"subscription", sub.ID,
		"object_id", objectID,
		"sku", sku.SkuPartNumber)

	return &model.AssignedLicense{
		SkuID:         sku.SkuID,
		SkuPartNumber: sku.SkuPartNumber,
	}, nil
}

// FetchActivationData returns the raw software install report of one user
func (c *Client) FetchActivationData(ctx context.Context, sub *model.Subscription, objectID types.ObjectID) (data json.RawMessage, err error) {
	defer recoverFailure(ctx, "FetchActivationData", &err)

	cfg, baseURL, err := userManagement(sub)
	if err != nil {
		return nil, err
	}
	creds, err := ResolveCredentials(ctx, sub, cfg, false)
	if err != nil {
		return nil, err
	}

	target := baseURL + fmt.Sprintf(officeInstallPath, url.PathEscape(objectID.String()))
	body, err := c.do(ctx, "FetchActivationData", http.MethodGet, target, creds, nil, acceptRead)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, model.NewFailure(model.KindAPIError, "activation response is not valid JSON",
			goerr.V(model.KeyDetails, snippet(string(body), maxDetailsLength)))
	}
	return json.RawMessage(body), nil
}

// do sends one request and returns the body of an accepted response
func (c *Client) do(ctx context.Context, op, method, target string, creds *Credentials, payload any, accepted []int) ([]byte, error) {
	logger := ctxlog.From(ctx).With("op", op)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, model.WrapFailure(err, model.KindUnknownError, "failed to marshal request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, model.WrapFailure(err, model.KindMissingUserManagementConfig,
			"failed to build request", goerr.V("url", target))
	}
	for key, value := range creds.Headers {
		if skippedHeaders[strings.ToLower(key)] {
			continue
		}
		req.Header.Set(key, value)
	}
	creds.Cookies.Apply(req)

	logger.Debug("Sending admin API request", "method", method, "url", target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		failure := classifyTransportError(err, target)
		logger.Warn("Admin API request failed", "error", failure)
		return nil, failure
	}
	defer safeClose(ctx, resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		failure := classifyTransportError(err, target)
		logger.Warn("Failed to read admin API response", "error", failure)
		return nil, failure
	}

	logger.Debug("Received admin API response", "status", resp.StatusCode, "length", len(body))

	if err := classifyStatus(resp.StatusCode, body, accepted); err != nil {
		logger.Warn("Admin API returned failure",
			"status", resp.StatusCode,
			"kind", model.KindOf(err))
		return nil, err
	}
	return body, nil
}

// userManagement returns the user management config and the portal base URL derived from it
func userManagement(sub *model.Subscription) (*model.UserCreateConfig, string, error) {
	if sub == nil || sub.UserCreateConfig == nil {
		return nil, "", model.NewFailure(model.KindMissingUserManagementConfig,
			"user management is not configured for subscription")
	}

	u, err := url.Parse(sub.UserCreateConfig.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, "", model.NewFailure(model.KindMissingUserManagementConfig,
			"user management api_url is not a valid absolute URL",
			goerr.V("subscription", sub.ID),
			goerr.V("api_url", sub.UserCreateConfig.APIURL))
	}
	return sub.UserCreateConfig, u.Scheme + "://" + u.Host, nil
}

func decodeResponse(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return model.WrapFailure(err, model.KindAPIError, "response is not valid JSON",
			goerr.V(model.KeyDetails, snippet(string(body), maxDetailsLength)))
	}
	return nil
}

func nonNilRaw(items []json.RawMessage) []json.RawMessage {
	if items == nil {
		return []json.RawMessage{}
	}
	return items
}

func safeClose(ctx context.Context, c io.Closer) {
	if err := c.Close(); err != nil {
		ctxlog.From(ctx).Warn("Failed to close response body", "error", err)
	}
}

// recoverFailure converts a panic in an operation into an unknown_error failure
func recoverFailure(ctx context.Context, op string, err *error) {
	if r := recover(); r != nil {
		ctxlog.From(ctx).Error("Recovered from panic", "op", op, "panic", r)
		*err = model.NewFailure(model.KindUnknownError, "unexpected error",
			goerr.V("op", op),
			goerr.V("panic", fmt.Sprint(r)))
	}
}
