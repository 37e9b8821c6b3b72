package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"communityhub_backend/internals/configs"
)

// GitHubFetcher proxies the public GitHub user API. An interface so the
// profile controller can be tested without outbound HTTP.
type GitHubFetcher interface {
	FetchUser(username string) (status int, body []byte, err error)
}

// FiberGitHubFetcher rides Fiber's fasthttp agent; no extra HTTP client dep.
type FiberGitHubFetcher struct{}

func (FiberGitHubFetcher) FetchUser(username string) (int, []byte, error) {
	agent := fiber.Get(fmt.Sprintf("%s/users/%s", configs.GitHubAPIBase, username))
	agent.Set(fiber.HeaderAccept, "application/vnd.github+json")
	agent.Set(fiber.HeaderUserAgent, "communityhub-backend")

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, errs[0]
	}
	return status, body, nil
}
