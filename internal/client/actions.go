package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-movie-client/internal/async"
	"github.com/MKhiriev/go-movie-client/models"
	"github.com/urfave/cli/v3"
)

var ErrMissingArgument = errors.New("missing argument")

type sessionView struct {
	models.Session
	LoggedIn bool `json:"logged_in"`
	Expired  bool `json:"expired"`
}

type statusView struct {
	Status string `json:"status"`
}

func (a *App) Register(ctx context.Context, cmd *cli.Command) error {
	user, err := a.services.SessionService.Register(ctx, userDetailsFromFlags(cmd))
	if err != nil {
		return err
	}
	return a.writeJSON(user)
}

func (a *App) Login(ctx context.Context, cmd *cli.Command) error {
	user, err := a.services.SessionService.Login(ctx, models.Credentials{
		Username: cmd.String("username"),
		Password: cmd.String("password"),
	})
	if err != nil {
		return err
	}
	return a.writeJSON(user)
}

func (a *App) Logout(ctx context.Context, _ *cli.Command) error {
	if err := a.services.SessionService.Logout(ctx); err != nil {
		return err
	}
	return a.writeJSON(statusView{Status: "logged out"})
}

func (a *App) Session(ctx context.Context, _ *cli.Command) error {
	session, err := a.services.SessionService.Current(ctx)
	if err != nil {
		return err
	}
	return a.writeJSON(sessionView{
		Session:  session,
		LoggedIn: session.LoggedIn(),
		Expired:  session.Expired(time.Now()),
	})
}

func (a *App) MoviesList(ctx context.Context, _ *cli.Command) error {
	return a.awaitAndWrite(ctx, a.services.CatalogService.GetAllMovies(ctx))
}

func (a *App) MoviesGet(ctx context.Context, cmd *cli.Command) error {
	title, err := requiredArg(cmd, "title")
	if err != nil {
		return err
	}
	return a.awaitAndWrite(ctx, a.services.CatalogService.GetOneMovie(ctx, title))
}

func (a *App) MoviesDirector(ctx context.Context, cmd *cli.Command) error {
	name, err := requiredArg(cmd, "name")
	if err != nil {
		return err
	}
	return a.awaitAndWrite(ctx, a.services.CatalogService.GetDirector(ctx, name))
}

func (a *App) MoviesGenre(ctx context.Context, cmd *cli.Command) error {
	name, err := requiredArg(cmd, "name")
	if err != nil {
		return err
	}
	return a.awaitAndWrite(ctx, a.services.CatalogService.GetGenre(ctx, name))
}

func (a *App) UserShow(ctx context.Context, _ *cli.Command) error {
	return a.awaitAndWrite(ctx, a.services.CatalogService.GetUser(ctx))
}

func (a *App) UserEdit(ctx context.Context, cmd *cli.Command) error {
	user, err := a.services.SessionService.EditProfile(ctx, userDetailsFromFlags(cmd))
	if err != nil {
		return err
	}
	return a.writeJSON(user)
}

func (a *App) UserDelete(ctx context.Context, _ *cli.Command) error {
	if err := a.services.SessionService.DeleteAccount(ctx); err != nil {
		return err
	}
	return a.writeJSON(statusView{Status: "account deleted"})
}

func (a *App) FavoritesList(ctx context.Context, _ *cli.Command) error {
	raw, err := a.services.CatalogService.GetFavoriteMovies(ctx).Await(ctx)
	if err != nil {
		return err
	}

	user, err := models.Decode[models.User](raw)
	if err != nil {
		return localFailure("FavoritesList", err)
	}

	favorites := user.FavoriteMovies
	if favorites == nil {
		favorites = []string{}
	}
	return a.writeJSON(favorites)
}

func (a *App) FavoritesAdd(ctx context.Context, cmd *cli.Command) error {
	return a.updateFavorites(ctx, cmd, a.services.CatalogService.AddFavoriteMovie)
}

func (a *App) FavoritesRemove(ctx context.Context, cmd *cli.Command) error {
	return a.updateFavorites(ctx, cmd, a.services.CatalogService.RemoveFavoriteMovie)
}

// updateFavorites starts one request per movie ID, waits for all of them and
// prints the resulting favourites.
func (a *App) updateFavorites(
	ctx context.Context,
	cmd *cli.Command,
	update func(ctx context.Context, movieID string) *async.Future[json.RawMessage],
) error {
	movieIDs := cmd.Args().Slice()
	if len(movieIDs) == 0 {
		return fmt.Errorf("%w: MOVIE_ID", ErrMissingArgument)
	}

	futures := make([]*async.Future[json.RawMessage], 0, len(movieIDs))
	for _, movieID := range movieIDs {
		futures = append(futures, update(ctx, movieID))
	}

	var firstErr error
	for _, future := range futures {
		if _, err := future.Await(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return firstErr
	}

	return a.FavoritesList(ctx, cmd)
}

func (a *App) Version(_ context.Context, _ *cli.Command) error {
	return a.writeJSON(a.buildInfo.Fields())
}

func (a *App) awaitAndWrite(ctx context.Context, future *async.Future[json.RawMessage]) error {
	raw, err := future.Await(ctx)
	if err != nil {
		return err
	}
	return a.writeRaw(raw)
}

func requiredArg(cmd *cli.Command, name string) (string, error) {
	value := cmd.StringArg(name)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}
	return value, nil
}

func userDetailsFromFlags(cmd *cli.Command) models.UserDetails {
	return models.UserDetails{
		Username: cmd.String("username"),
		Password: cmd.String("password"),
		Email:    cmd.String("email"),
		Birthday: cmd.String("birthday"),
	}
}
