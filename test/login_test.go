package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/lifedash/internal/apiclient"
	"github.com/2beens/lifedash/internal/auth"
)

func (s *IntegrationTestSuite) TestLogin() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cases := map[string]struct {
		creds              auth.Credentials
		expectedStatusCode int
		expectedBody       string
	}{
		"good creds": {
			creds:              auth.Credentials{Username: testUsername, Password: testPassword},
			expectedStatusCode: http.StatusOK,
		},
		"bad password": {
			creds:              auth.Credentials{Username: testUsername, Password: "bad-password"},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "error, wrong credentials",
		},
		"unknown user": {
			creds:              auth.Credentials{Username: "nobody", Password: testPassword},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "error, wrong credentials",
		},
		"empty password": {
			creds:              auth.Credentials{Username: testUsername},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "error, password empty",
		},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			body, err := json.Marshal(tc.creds)
			s.Require().NoError(err)

			req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverEndpoint+"/a/login", bytes.NewReader(body))
			s.Require().NoError(err)
			req.Header.Set("User-Agent", "test-agent")
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.httpClient.Do(req)
			s.Require().NoError(err)
			defer resp.Body.Close()
			s.Equal(tc.expectedStatusCode, resp.StatusCode)

			respBytes, err := io.ReadAll(resp.Body)
			s.Require().NoError(err)
			if tc.expectedBody != "" {
				s.Equal(tc.expectedBody, strings.TrimSpace(string(respBytes)))
				return
			}

			var loginResp struct {
				Token string `json:"token"`
			}
			s.Require().NoError(json.Unmarshal(respBytes, &loginResp))
			s.NotEmpty(loginResp.Token)
		})
	}
}

func (s *IntegrationTestSuite) TestLogout() {
	ctx := context.Background()
	c := s.loggedInClient(ctx)

	_, err := c.ActiveWorkout(ctx)
	s.Require().NoError(err)

	token := c.Token()
	s.Require().NoError(c.Logout(ctx))

	// the old token is dead
	c.SetToken(token)
	_, err = c.ActiveWorkout(ctx)
	s.ErrorIs(err, apiclient.ErrUnauthorized)
}
