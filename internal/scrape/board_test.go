package scrape

import "testing"

const landingFixture = `<!DOCTYPE html>
<html><body>
<section id="category-2" class="jobs">
  <article>
    <ul>
      <li class="new-listing-container feature--featured">
        <a href="/remote-jobs/acme-senior-go-engineer">
          <div class="new-listing">
            <h4 class="new-listing__header__title">Senior Go Engineer</h4>
            <p class="new-listing__company-name">Acme</p>
            <p class="new-listing__company-headquarters">Berlin, Germany</p>
          </div>
        </a>
      </li>
      <li class="new-listing-container">
        <a href="/remote-jobs/beta-data-engineer">
          <div class="new-listing">
            <h4 class="new-listing__header__title">Data Engineer</h4>
            <p class="new-listing__company-name">Beta</p>
          </div>
        </a>
      </li>
      <li class="new-listing-container ad">
        <a href="/promote">Post a job</a>
      </li>
    </ul>
  </article>
</section>
<section id="category-10" class="jobs">
  <article>
    <ul>
      <li class="new-listing-container">
        <a href="/remote-jobs/acme-senior-go-engineer">
          <div class="new-listing">
            <h4 class="new-listing__header__title">Senior Go Engineer</h4>
            <p class="new-listing__company-headquarters">Berlin, Germany</p>
          </div>
        </a>
      </li>
    </ul>
  </article>
</section>
</body></html>`

func TestListings(t *testing.T) {
	got, err := Listings(landingFixture, "https://weworkremotely.com")
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("listings = %+v", got)
	}
	if got[0].URL != "https://weworkremotely.com/remote-jobs/acme-senior-go-engineer" {
		t.Errorf("url = %q", got[0].URL)
	}
	if got[0].Location != "Berlin, Germany" {
		t.Errorf("location = %q", got[0].Location)
	}
	// Missing headquarters element falls back to Remote.
	if got[1].Location != "Remote" {
		t.Errorf("fallback location = %q", got[1].Location)
	}
}

func TestListingsEmptyPage(t *testing.T) {
	got, err := Listings("<html><body><p>maintenance</p></body></html>", "https://weworkremotely.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("listings = %+v", got)
	}
}
