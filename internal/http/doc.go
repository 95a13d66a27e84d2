// Package http provides HTTP handlers and middleware for the parking API.
//
// The router exposes the following endpoints:
//   - POST /signup: creates an account. Body: {"name","email","password"}.
//   - POST /login: issues a session token. Body: {"email","password"}. Response:
//     {"token","email","user_id","expires_at"} with the token also surfaced via
//     the `X-Session-Token` header and a `session_token` cookie.
//   - POST /logout: revokes the current session token extracted from the
//     Authorization header or session cookie. Returns 204 No Content and clears
//     the cookie.
//   - GET /profile, PUT /profile/name, PUT /profile/image: account profile
//     endpoints exchanging the `profileDTO` payload defined in profile_handler.go.
//   - GET /spots, GET /spots/{name}, GET /spots/{name}/navigation: parking spot
//     catalog endpoints. The navigation endpoint returns the deep link used to
//     hand the spot position to a navigation application. Spot names containing
//     spaces are sent percent encoded.
//   - GET /reservations, POST /reservations, POST /reservations/quote:
//     reservation endpoints exchanging the DTOs defined in reservation_handler.go.
//     Creating a reservation runs the simulated payment before persisting.
//   - GET /favorites, PUT /favorites/{spot}, DELETE /favorites/{spot},
//     POST /favorites/{spot}: favorite spot endpoints. POST toggles the state
//     and reports the result.
//   - POST /feedback, GET /feedback: feedback submission and history.
//
// All endpoints except /signup and /login require a session token. Request and
// response DTOs live alongside their respective handlers so tests and
// documentation share the same ground truth.
package http
