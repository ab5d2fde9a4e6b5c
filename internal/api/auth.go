package api

import "context"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login autentica y retorna la credencial emitida. El caller decide
// dónde persistirla (session.Store).
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	err := c.postJSON(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// Register da de alta un usuario. Retorna el mensaje localizado del
// backend (la registración no emite credencial: el flujo original
// redirige al login).
func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (string, error) {
	in := registerRequest{FirstName: firstName, LastName: lastName, Email: email, Password: password}
	var out messageResponse
	if err := c.postJSON(ctx, "/api/auth/register", in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
